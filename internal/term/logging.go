package term

import (
	"os"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

// LogToFile routes loggo output to the file at path, configured with spec,
// since the screen owns the terminal while the viewer runs. The returned
// function restores the previous writer and closes the file.
func LogToFile(path, spec string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Annotatef(err, "opening log file %q", path)
	}
	prev, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(f, loggo.DefaultFormatter))
	if err != nil {
		f.Close()
		return nil, errors.Trace(err)
	}
	if err := loggo.ConfigureLoggers(spec); err != nil {
		loggo.ReplaceDefaultWriter(prev)
		f.Close()
		return nil, errors.Annotate(err, "configuring loggers")
	}
	return func() {
		loggo.ReplaceDefaultWriter(prev)
		f.Close()
	}, nil
}
