// Package clipboard copies text to the operating system clipboard.
package clipboard

import "github.com/atotto/clipboard"

// System writes to the OS clipboard through xclip/xsel/wl-copy, pbcopy or the Windows API.
type System struct{}

// WriteAll copies text to the OS clipboard.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Unsupported reports whether no clipboard utility is available on this host.
func Unsupported() bool {
	return clipboard.Unsupported
}
