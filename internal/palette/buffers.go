package palette

// Buffers tracks open content files in the order they were opened
type Buffers struct {
	open    []string
	current string
}

// Open makes name the current buffer, adding it if it is not open yet
func (b *Buffers) Open(name string) {
	b.current = name
	for _, f := range b.open {
		if f == name {
			return
		}
	}
	b.open = append(b.open, name)
}

// Close removes name from the open buffers. If name was current, the most
// recently opened remaining buffer becomes current; with none left nothing is.
// It returns the buffer that should now be shown, or "" for an empty pane.
func (b *Buffers) Close(name string) string {
	kept := b.open[:0]
	for _, f := range b.open {
		if f != name {
			kept = append(kept, f)
		}
	}
	b.open = kept

	switch {
	case len(b.open) == 0:
		b.current = ""
	case b.current == name:
		b.current = b.open[len(b.open)-1]
	}

	return b.current
}

// Detach clears the current buffer without closing it, used when command
// output replaces the pane contents
func (b *Buffers) Detach() {
	b.current = ""
}

// Current returns the buffer being shown, or "" when the pane holds command output
func (b *Buffers) Current() string {
	return b.current
}

// List returns the open buffers in order
func (b *Buffers) List() []string {
	return append([]string(nil), b.open...)
}
