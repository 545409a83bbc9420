package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"protscan/internal/report"
	"protscan/pkg/api"
)

func TestToAPIReport(t *testing.T) {
	v := ToAPIReport(sampleReport("zf1", "seqs.fasta"))
	if v.SequenceID != "zf1" || v.SourceFile != "seqs.fasta" {
		t.Fatalf("identity fields lost: %+v", v)
	}
	if v.SequenceLength != 7 || v.MolecularWeight != 770.96 {
		t.Errorf("length/weight: %d %.2f", v.SequenceLength, v.MolecularWeight)
	}
	if len(v.Regions.Hydrophobic) != 1 || v.Regions.Hydrophobic[0].Sequence != "MKCPECG" {
		t.Errorf("hydrophobic regions: %+v", v.Regions.Hydrophobic)
	}
	if len(v.Regions.Charged) != 1 || v.Regions.Charged[0].NetCharge != 0.1 {
		t.Errorf("charged regions: %+v", v.Regions.Charged)
	}
	if v.SecondaryStructure.PredictionMethod != "simple" {
		t.Errorf("method: %q", v.SecondaryStructure.PredictionMethod)
	}
}

func TestToAPIReportEmptyRegionsMarshalAsArrays(t *testing.T) {
	r := sampleReport("zf1", "")
	r.Regions.Hydrophobic = nil
	r.Regions.Charged = nil

	data, err := json.Marshal(ToAPIReport(r))
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"hydrophobic_regions":[]`, `"charged_regions":[]`} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("missing %s in %s", want, s)
		}
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	list := []report.Report{sampleReport("a", ""), sampleReport("b", "")}
	if err := WriteJSON(&buf, list); err != nil {
		t.Fatal(err)
	}
	var back []api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(back) != 2 || back[1].SequenceID != "b" {
		t.Fatalf("round trip: %+v", back)
	}
}
