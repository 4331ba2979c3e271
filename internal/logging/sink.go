package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Sink receives every record the bridge accepts, in bridge order. Sinks run
// on the goroutine that logged.
type Sink interface {
	Write(r Record) error
}

type fileSink struct {
	out *lumberjack.Logger
}

func rotated(path string, maxSizeMB int) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:  path,
		MaxSize:   maxSizeMB,
		LocalTime: true,
	}
}

func newFileSink(path string, maxSizeMB int) *fileSink {
	return &fileSink{out: rotated(path, maxSizeMB)}
}

func (s *fileSink) Write(r Record) error {
	_, err := io.WriteString(s.out, r.Line()+"\n")
	return err
}

func (s *fileSink) Close() error { return s.out.Close() }

type consoleSink struct {
	out    io.Writer
	source lipgloss.Style
	levels map[Level]lipgloss.Style
}

func newConsoleSink(out io.Writer) *consoleSink {
	renderer := lipgloss.NewRenderer(out)
	s := &consoleSink{
		out:    out,
		source: renderer.NewStyle().Foreground(lipgloss.Color("13")),
		levels: make(map[Level]lipgloss.Style, len(levels)),
	}
	for level, info := range levels {
		s.levels[level] = renderer.NewStyle().Foreground(info.console)
	}
	return s
}

func (s *consoleSink) Write(r Record) error {
	_, err := fmt.Fprintf(s.out, "[%s] [%s] [%s]: %s\n",
		r.Time.Format(lineTimeLayout),
		s.source.Render(r.Source),
		s.levels[r.Level].Render(r.Level.String()),
		r.Message,
	)
	return err
}

type structuredSink struct {
	log   zerolog.Logger
	owned io.Closer
}

// newStructuredSink writes JSON to out. owned, when not nil, is closed with
// the sink.
func newStructuredSink(out io.Writer, owned io.Closer) *structuredSink {
	return &structuredSink{log: zerolog.New(out), owned: owned}
}

func (s *structuredSink) Close() error {
	if s.owned == nil {
		return nil
	}
	return s.owned.Close()
}

func (s *structuredSink) Write(r Record) error {
	s.log.WithLevel(r.Level.info().json).
		Time(zerolog.TimestampFieldName, r.Time).
		Str("source", r.Source).
		Msg(r.Message)
	return nil
}
