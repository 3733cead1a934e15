package main

import (
	"log"

	"golang.design/x/clipboard"

	"github.com/milk9111/worldedit"
)

// sysClipboard mirrors the editing clipboard to the OS clipboard so a
// copied object survives an editor restart. Everything degrades to the
// in-process clipboard when the OS one is unavailable (headless X, wasm).
type sysClipboard struct {
	ok bool
}

func newSysClipboard() *sysClipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("system clipboard unavailable: %v", err)
		return &sysClipboard{}
	}
	return &sysClipboard{ok: true}
}

// push exports the last copied object after a copy.
func (c *sysClipboard) push(clip *worldedit.Clipboard) {
	if !c.ok || clip.Empty() {
		return
	}
	data, err := clip.Encode()
	if err != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, data)
}

// pull seeds an empty clipboard from the OS before a paste. Clipboard
// text written by other programs fails to decode and is ignored.
func (c *sysClipboard) pull(clip *worldedit.Clipboard) {
	if !c.ok || !clip.Empty() {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	_ = clip.Import(data)
}
