package platform

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var ErrClipboardUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

var (
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
	writeClipboard       = clipboard.WriteAll
)

// CopyText writes text to the system clipboard.
func CopyText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("nothing to copy")
	}
	if clipboardUnsupported() {
		return ErrClipboardUnsupported
	}
	return writeClipboard(text)
}
