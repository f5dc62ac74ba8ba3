package queryengine

import "bufio"

const (
	esc byte = 0x1b
	bel byte = 0x07
)

// readColorResponse implements the single-response state machine from the
// wire protocol: read up to the first ESC (both OSC and DA1 replies start
// with one), then peek the next byte without consuming it. If it isn't
// ']', DA1 answered first — the terminal doesn't support the query at
// all, so the DA1 reply is drained and UnsupportedTerminal is returned.
// Otherwise the OSC payload is collected up to BEL, or ESC + '\' (ST).
func readColorResponse(r *bufio.Reader) ([]byte, error) {
	buf, err := r.ReadBytes(esc)
	if err != nil {
		return nil, err
	}

	next, err := r.Peek(1)
	if err != nil {
		return nil, err
	}
	if next[0] != ']' {
		_ = drainDA1(r, false)
		return nil, unsupportedError()
	}

	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)

		switch b {
		case bel:
			return buf, nil
		case esc:
			tail, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			buf = append(buf, tail)
			return buf, nil
		}
	}
}

// drainDA1 consumes a pending DA1 reply (ESC [ ... c) off r. When
// consumeESC is false, the leading ESC has already been consumed by the
// caller (it's the byte that revealed DA1 arrived first).
func drainDA1(r *bufio.Reader, consumeESC bool) error {
	if consumeESC {
		if _, err := r.ReadBytes(esc); err != nil {
			return err
		}
	}
	if _, err := r.ReadBytes('['); err != nil {
		return err
	}
	_, err := r.ReadBytes('c')
	return err
}
