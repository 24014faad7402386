package press

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	traceLineTemplateConstant             = "%-3s %s\n"
	displayLineTemplateConstant           = "%s\n"
	yamlIndentConstant                    = 2
	transcriptEncodeErrorTemplateConstant = "unable to encode transcript: %w"
	transcriptWriteErrorTemplateConstant  = "unable to write transcript: %w"
)

// RenderTranscript writes the transcript in the requested format. Steps are
// included only when trace is set.
func RenderTranscript(writer io.Writer, transcript Transcript, format OutputFormat, trace bool) error {
	if !trace {
		transcript.Steps = nil
	}

	switch format {
	case OutputFormatYAML:
		return renderYAML(writer, transcript)
	default:
		return renderText(writer, transcript)
	}
}

func renderText(writer io.Writer, transcript Transcript) error {
	for _, step := range transcript.Steps {
		if _, writeError := fmt.Fprintf(writer, traceLineTemplateConstant, step.Key, step.Display); writeError != nil {
			return fmt.Errorf(transcriptWriteErrorTemplateConstant, writeError)
		}
	}
	if _, writeError := fmt.Fprintf(writer, displayLineTemplateConstant, transcript.Display); writeError != nil {
		return fmt.Errorf(transcriptWriteErrorTemplateConstant, writeError)
	}
	return nil
}

func renderYAML(writer io.Writer, transcript Transcript) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(transcript); encodeError != nil {
		return fmt.Errorf(transcriptEncodeErrorTemplateConstant, encodeError)
	}
	if closeError := encoder.Close(); closeError != nil {
		return fmt.Errorf(transcriptEncodeErrorTemplateConstant, closeError)
	}
	return nil
}
