package gamelog

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

// MultiRecorder hands every record to each of its recorders
type MultiRecorder []Recorder

// Record records to every recorder, even after one of them fails
func (m MultiRecorder) Record(ctx context.Context, r *Record) error {
	var result *multierror.Error
	for _, recorder := range m {
		if err := recorder.Record(ctx, r); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}
