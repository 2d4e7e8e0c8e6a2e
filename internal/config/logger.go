package config

import (
	"fmt"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
	"github.com/qdm12/log"
)

type Logger struct {
	Level  *log.Level
	Caller string
}

func (l *Logger) setDefaults() {
	l.Level = gosettings.DefaultPointer(l.Level, log.LevelInfo)
	l.Caller = gosettings.DefaultComparable(l.Caller, "hidden")
}

func (l Logger) Validate() (err error) {
	return validate.IsOneOf(l.Caller, "hidden", "short")
}

func (l Logger) toLinesNode() *gotree.Node {
	node := gotree.New("Logger")
	node.Appendf("Level: %s", l.Level.String())
	node.Appendf("Caller: %s", l.Caller)
	return node
}

// ToOptions assumes the settings have been defaulted and validated.
func (l Logger) ToOptions() (options []log.Option) {
	callerShort := l.Caller == "short"
	return []log.Option{
		log.SetLevel(*l.Level),
		log.SetCallerFile(callerShort),
		log.SetCallerLine(callerShort),
	}
}

func (l *Logger) read(r *reader.Reader) (err error) {
	l.Caller = r.String("LOG_CALLER")

	levelString := r.Get("LOG_LEVEL")
	if levelString == nil {
		return nil
	}

	level, err := log.ParseLevel(*levelString)
	if err != nil {
		return fmt.Errorf("environment variable LOG_LEVEL: %w", err)
	}
	l.Level = &level
	return nil
}
