package writer

import "github.com/arloliu/avrowire/wire"

// optionWriter resolves presence or absence of a value into a two-way
// discriminated union: absent writes only the null branch index, present
// writes the value branch index followed by the inner encoding.
//
// The two-branch restriction models a nullable wrapper, not a general N-way
// union; the value branch index is always the complement of the null branch.
type optionWriter struct {
	nullIndex  int
	valueIndex int
	writer     ValueWriter
}

func (w *optionWriter) Write(v any, sink wire.Sink) error {
	if v == nil {
		return sink.WriteIndex(w.nullIndex)
	}

	if err := sink.WriteIndex(w.valueIndex); err != nil {
		return err
	}

	return w.writer.Write(v, sink)
}
