// irq_sources.go - the IRQSource bit assignments every peripheral shares
// when asserting the CPU's IRQ line (spec.md §4.1 "Interrupt contract").

package main

const (
	irqSourceSystemVIA IRQSource = 1 << iota
	irqSourceUserVIA
	irqSourceWD1770
	irqSourceTube
	irqSourceBeebLink
)
