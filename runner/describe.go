package runner

import (
	"io"
	"text/template"

	"github.com/commitgram/commitgram/message"
)

const describeTemplate = `type: {{ .Type.Value }}
{{- with .Type.Scope }}
scope: {{ . }}
{{- end }}
description: {{ .Description }}
{{- with .Body }}
body: {{ .Value }}
{{- end }}
{{- with .Footer }}
footer:
{{- range .Lines }}
  {{ .Tag }}: {{ .Value }}
{{- end }}
{{- end }}
`

// Describe writes a plain-text rendering of one parsed message tree.
func (r *Runner) Describe(w io.Writer, msg *message.Message) error {
	t, err := template.New("describe").Parse(describeTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, msg)
}
