package enumset

import (
	"text/template"
)

var fileTemplate *template.Template

func init() {
	fileTemplate = template.Must(template.New("enumfile").Parse(`// Code generated by declgen. DO NOT EDIT.

package {{.Package}}
{{if .Stringer}}
import "strconv"
{{end}}
type {{.TypeName}} int
{{if .Consts}}
const (
{{range $i, $m := .Members}}	{{$m.Const}}{{if eq $i 0}} {{$.TypeName}} = iota{{end}}
{{end}}
	{{.TotalConst}} = int(iota)
)
{{end}}{{if .Names}}
var {{.NamesVar}} = [...]string{
{{range .Members}}	{{printf "%q" .Display}},
{{end}}}
{{end}}{{if .Stringer}}
func ({{.Receiver}} {{.TypeName}}) String() string {
	if {{.Receiver}} < 0 || int({{.Receiver}}) >= len({{.NamesVar}}) {
		return "{{.TypeName}}(" + strconv.Itoa(int({{.Receiver}})) + ")"
	}

	return {{.NamesVar}}[{{.Receiver}}]
}
{{end}}`))
}

type fileData struct {
	Package    string
	TypeName   string
	TotalConst string
	NamesVar   string
	Receiver   string
	Members    []memberData
	Consts     bool
	Names      bool
	Stringer   bool
}

type memberData struct {
	Const   string
	Display string
}
