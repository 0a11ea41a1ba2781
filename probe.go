package md2docx

import (
	"fmt"

	"github.com/alnah/go-md2docx/internal/pipeline"
)

// prober initializes a backend and reports whether it can produce documents.
type prober interface {
	Probe() error
}

// Probe checks that the DOCX backend can build, validate and save a
// document with every style and list definition the converter uses.
// Call once at startup; failures wrap ErrMissingCapability.
func Probe() error {
	return probe(pipeline.NewGooxmlWriter())
}

func probe(p prober) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMissingCapability, r)
		}
	}()

	if err := p.Probe(); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingCapability, err)
	}
	return nil
}
