package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jedib0t/go-pretty/table"
	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/upload"
)

// UploadReport collects the outcome of every file visited in one run.
type UploadReport struct {
	Root     string
	Outcomes []upload.Outcome
}

type UploadSummary struct {
	Scanned  int `json:"scanned"`
	Selected int `json:"selected"`
	Uploaded int `json:"uploaded"`
	Known    int `json:"known"`
	Failed   int `json:"failed"`
}

type uploadReportEntry struct {
	Path     string            `json:"path"`
	Decision classify.Decision `json:"decision"`
	SHA256   string            `json:"sha256"`
	Action   string            `json:"action,omitempty"`
	Status   upload.Status     `json:"status"`
	Error    string            `json:"error,omitempty"`
}

type uploadReportJSON struct {
	Root    string              `json:"root"`
	Summary UploadSummary       `json:"summary"`
	Files   []uploadReportEntry `json:"files"`
}

func NewUploadReport(root string) *UploadReport {
	return &UploadReport{Root: root}
}

func (r *UploadReport) Add(outcome upload.Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// Attempted returns the outcomes of files that were sent to intake.
func (r *UploadReport) Attempted() []upload.Outcome {
	var attempted []upload.Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Status != upload.StatusSkipped {
			attempted = append(attempted, outcome)
		}
	}
	return attempted
}

func (r *UploadReport) Summary() UploadSummary {
	summary := UploadSummary{Scanned: len(r.Outcomes)}
	for _, outcome := range r.Outcomes {
		switch outcome.Status {
		case upload.StatusUploaded:
			summary.Uploaded++
		case upload.StatusKnown:
			summary.Known++
		case upload.StatusFailed:
			summary.Failed++
		}
	}
	summary.Selected = summary.Uploaded + summary.Known + summary.Failed
	return summary
}

func (s UploadSummary) String() string {
	return fmt.Sprintf("scanned %d, selected %d, uploaded %d, known %d, failed %d",
		s.Scanned, s.Selected, s.Uploaded, s.Known, s.Failed)
}

func WriteUploadReport(report *UploadReport, output io.Writer) {
	writer := tabwriter.NewWriter(output, 0, 0, 1, ' ', 0)
	defer writer.Flush()
	fmt.Fprintln(writer, "path\tdecision\tsha256\tstatus\terror")
	for _, outcome := range report.Attempted() {
		fmt.Fprintf(writer, "%v\t%v\t%v\t%v\t%v\n",
			outcome.Path, outcome.Decision, outcome.SHA256, outcome.Status, outcome.ErrorText())
	}
	fmt.Fprintf(writer, "# %s\n", report.Summary())
}

func WritePrettyUploadReport(report *UploadReport, output io.Writer) {
	writer := table.NewWriter()
	writer.SetOutputMirror(output)
	defer writer.Render()
	writer.AppendHeader(table.Row{"#", "Path", "Decision", "SHA256", "Action", "Status", "Error"})
	for i, outcome := range report.Attempted() {
		writer.AppendRow(table.Row{i, outcome.Path, outcome.Decision, outcome.SHA256,
			outcome.Action, outcome.Status, outcome.ErrorText()})
	}
	writer.AppendFooter(table.Row{"", report.Summary().String()})
}

func WriteUploadReportAsJSON(report *UploadReport, output io.Writer, pretty bool) error {
	data := uploadReportJSON{Root: report.Root, Summary: report.Summary(), Files: []uploadReportEntry{}}
	for _, outcome := range report.Attempted() {
		data.Files = append(data.Files, uploadReportEntry{
			Path:     outcome.Path,
			Decision: outcome.Decision,
			SHA256:   outcome.SHA256,
			Action:   outcome.Action,
			Status:   outcome.Status,
			Error:    outcome.ErrorText(),
		})
	}
	return WriteAsJSON(data, output, pretty)
}

func WriteAsJSON(data interface{}, output io.Writer, pretty bool) error {
	var bytes []byte
	var err error
	if pretty {
		bytes, err = json.MarshalIndent(data, "", "    ")
	} else {
		bytes, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}
	_, err = output.Write(bytes)
	return err
}
