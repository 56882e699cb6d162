// message_paste.go - Start-paste/Stop-paste (OS RDCH feed) and
// Start-copy/Stop-copy (OS WRCH capture) host messages (spec.md §6).
//
// Grounded on the teacher's go.mod dependency on golang.design/x/clipboard
// (pulled in for the GUI's host-clipboard integration); here it backs the
// same role spec.md describes: feeding pasted text through the emulated
// keyboard's RDCH vector one byte at a time.

package main

import "golang.design/x/clipboard"

// PasteController drives a queued byte stream into the OS RDCH path one
// byte per poll, matching real keyboard-buffer pacing instead of dumping
// the whole string at once.
type PasteController struct {
	pending []byte
	active  bool
}

func newPasteController() *PasteController { return &PasteController{} }

// StartPaste begins feeding text (spec.md §6 "Start-paste: text - Feed
// text via OS RDCH").
func (p *PasteController) StartPaste(text string) {
	p.pending = []byte(text)
	p.active = true
}

// StartPasteFromClipboard reads the host OS clipboard via
// golang.design/x/clipboard instead of an explicit payload.
func (p *PasteController) StartPasteFromClipboard() error {
	if err := clipboard.Init(); err != nil {
		return err
	}
	p.StartPaste(string(clipboard.Read(clipboard.FmtText)))
	return nil
}

// StopPaste aborts an in-flight paste early.
func (p *PasteController) StopPaste() {
	p.active = false
	p.pending = nil
}

// Active reports whether a paste is still in flight.
func (p *PasteController) Active() bool { return p.active }

// NextByte pops the next pending byte, for the orchestrator to feed to
// the OS RDCH vector once per poll interval; the bool is false once the
// paste has drained, at which point the controller deactivates itself.
func (p *PasteController) NextByte() (byte, bool) {
	if !p.active || len(p.pending) == 0 {
		p.active = false
		return 0, false
	}
	b := p.pending[0]
	p.pending = p.pending[1:]
	if len(p.pending) == 0 {
		p.active = false
	}
	return b, true
}

// CopyController captures OS WRCH output while active (spec.md §6
// "Start-copy/Stop-copy: stop-callback, BASIC-flag - Capture OS WRCH
// output").
type CopyController struct {
	active    bool
	basicFlag bool
	captured  []byte
	onStop    func(captured []byte)
}

func newCopyController() *CopyController { return &CopyController{} }

// StartCopy begins capturing WRCH bytes; onStop (the message's
// stop-callback) is invoked once, when capture ends.
func (c *CopyController) StartCopy(basicFlag bool, onStop func([]byte)) {
	c.active = true
	c.basicFlag = basicFlag
	c.captured = nil
	c.onStop = onStop
}

// StopCopy ends capture and fires the stop-callback with what was captured.
func (c *CopyController) StopCopy() {
	if !c.active {
		return
	}
	c.active = false
	if c.onStop != nil {
		c.onStop(c.captured)
		c.onStop = nil
	}
}

// OnWRCH is called by the orchestrator whenever the emulated OS's WRCH
// vector emits a character, while capture is active.
func (c *CopyController) OnWRCH(b byte) {
	if !c.active {
		return
	}
	c.captured = append(c.captured, b)
}
