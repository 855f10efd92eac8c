package main

import (
	"testing"
)

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		yaml           bool
		depth          int
		compact        bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "tree of label file",
			input:       "rows/roman.txt",
			wantContain: []string{`"I" [0-1]`, `  "A" [0]`, `"II" [2]`, `"III" [3-4]`, "depth 2, 5 labels"},
		},
		{
			name:           "tree of yaml limited depth",
			input:          "trees/two-depth.yaml",
			yaml:           true,
			depth:          1,
			wantContain:    []string{`"I" [0-3]`, `"II" [4-7]`},
			wantNotContain: []string{`"A"`},
		},
		{
			name:        "tree compact mode",
			input:       "trees/two-depth.yaml",
			yaml:        true,
			compact:     true,
			wantContain: []string{` "A" [0-1]`, `  1 [0]`},
		},
		{
			name:        "tree as JSON",
			input:       "rows/roman.txt",
			wantJSON:    true,
			wantContain: []string{`"label": "III"`, `"stop": 5`},
		},
		{
			name:    "label file read as yaml",
			input:   "rows/roman.txt",
			yaml:    true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			yamlIn = tt.yaml
			treeDepth = tt.depth
			treeCompact = tt.compact

			args := []string{testInputPath(t, tt.input)}

			output, err := captureOutput(t, func() error {
				return runTree(args)
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runTree() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
