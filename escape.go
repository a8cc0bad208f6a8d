package asciijson

import "io"

// escapeChar maps a byte to the letter of its two-character escape, or 0 when
// the byte passes through unchanged. Bytes outside the escape set, including
// raw UTF-8 sequence bytes, are written verbatim; JSON text permits raw UTF-8
// and this layer does not validate encoding.
var escapeChar = [256]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'"':  '"',
	'\\': '\\',
}

func (w *RawWriter) putEscape(e byte) error {
	if err := w.sink.WriteByte('\\'); err != nil {
		return err
	}
	return w.sink.WriteByte(e)
}

// escapeString writes s to the sink, replacing each byte in the escape set
// with its two-character sequence. Unescaped runs are written in one piece.
func (w *RawWriter) escapeString(s string, quoted bool) error {
	if quoted {
		if err := w.sink.WriteByte('"'); err != nil {
			return err
		}
	}
	start := 0
	for i := 0; i < len(s); i++ {
		e := escapeChar[s[i]]
		if e == 0 {
			continue
		}
		if start < i {
			if _, err := w.sink.WriteString(s[start:i]); err != nil {
				return err
			}
		}
		if err := w.putEscape(e); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(s) {
		if _, err := w.sink.WriteString(s[start:]); err != nil {
			return err
		}
	}
	if quoted {
		return w.sink.WriteByte('"')
	}
	return nil
}

// escapeBytes is escapeString for a byte slice source.
func (w *RawWriter) escapeBytes(b []byte, quoted bool) error {
	if quoted {
		if err := w.sink.WriteByte('"'); err != nil {
			return err
		}
	}
	start := 0
	for i := 0; i < len(b); i++ {
		e := escapeChar[b[i]]
		if e == 0 {
			continue
		}
		if start < i {
			if _, err := w.sink.Write(b[start:i]); err != nil {
				return err
			}
		}
		if err := w.putEscape(e); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(b) {
		if _, err := w.sink.Write(b[start:]); err != nil {
			return err
		}
	}
	if quoted {
		return w.sink.WriteByte('"')
	}
	return nil
}

// StringFrom streams the contents of r to the sink as an escaped JSON
// string, reading it exactly once. When quoted is false the surrounding
// quotes are omitted so callers can assemble raw fragments.
func (w *RawWriter) StringFrom(r io.Reader, quoted bool) error {
	if quoted {
		if err := w.sink.WriteByte('"'); err != nil {
			return err
		}
	}
	var buf [512]byte
	for {
		n, err := r.Read(buf[:])
		if n > 0 {
			if werr := w.escapeBytes(buf[:n], false); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if quoted {
		return w.sink.WriteByte('"')
	}
	return nil
}
