package list_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/precheck-tools/kdrc/pkg/config"
	"github.com/precheck-tools/kdrc/pkg/controller/list"
)

func TestController_List(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		cfg   *config.Config
		param *list.Param
		exp   []string
		isErr bool
	}{
		{
			name:  "csv",
			param: &list.Param{DesignName: "user_project_wrapper"},
			exp: []string{
				"feol,klayout_feol,tech-files/sky130A_mr.drc,-rd feol=true",
				"beol,klayout_beol,tech-files/sky130A_mr.drc,-rd beol=true",
				"offgrid,klayout_offgrid,tech-files/sky130A_mr.drc,-rd offgrid=true",
				"met_min_ca_density,klayout_met_min_ca_density,drc_checks/klayout/met_min_ca_density.lydrc,",
				"pin_label_purposes_overlapping_drawing,klayout_pin_label_purposes_overlapping_drawing,drc_checks/klayout/pin_label_purposes_overlapping_drawing.rb.drc,-rd top_cell_name=user_project_wrapper",
				"zeroarea,klayout_zeroarea,drc_checks/klayout/zeroarea.rb.drc,-rd cleaned_output=<output>/outputs/<input>_no_zero_areas.gds",
			},
		},
		{
			name: "template with overrides",
			cfg: &config.Config{
				Checks: []*config.Check{{Key: "beol", Script: "custom.drc"}},
			},
			param: &list.Param{LineTemplate: "{{.Key}} {{.Script}}"},
			exp: []string{
				"feol tech-files/sky130A_mr.drc",
				"beol custom.drc",
				"offgrid tech-files/sky130A_mr.drc",
				"met_min_ca_density drc_checks/klayout/met_min_ca_density.lydrc",
				"pin_label_purposes_overlapping_drawing drc_checks/klayout/pin_label_purposes_overlapping_drawing.rb.drc",
				"zeroarea drc_checks/klayout/zeroarea.rb.drc",
			},
		},
		{
			name:  "invalid template",
			param: &list.Param{LineTemplate: "{{.Key"},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			err := list.New(d.cfg, d.param, buf).List()
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if diff := cmp.Diff(d.exp, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
