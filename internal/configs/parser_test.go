// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package configs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
)

func TestConfigDirFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"work/main.gw":       "",
		"work/extra.gw.json": "{}",
		"work/.hidden.gw":    "",
		"work/main.gw~":      "",
		"work/#main.gw#":     "",
		"work/notes.txt":     "",
		"work/sub/other.gw":  "",
	}
	for name, content := range files {
		if err := afero.WriteFile(fs, name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	parser := NewParser(fs)
	got, diags := parser.ConfigDirFiles("work")
	if diags.HasErrors() {
		t.Fatalf("unexpected errors: %s", diags.Error())
	}

	want := []string{
		"work/extra.gw.json",
		"work/main.gw",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong files\n%s", diff)
	}
}

func TestLoadConfigFileNotExist(t *testing.T) {
	parser := NewParser(afero.NewMemMapFs())
	file, diags := parser.LoadConfigFile("nonexist.gw")
	if file != nil {
		t.Error("returned non-nil file for missing path")
	}
	if !diags.HasErrors() {
		t.Error("success; want error")
	}
}

func TestIsIgnoredFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"main.gw", false},
		{".main.gw", true},
		{"main.gw~", true},
		{"#main.gw#", true},
		{"#main.gw", false},
	}
	for _, test := range tests {
		if got := IsIgnoredFile(test.name); got != test.want {
			t.Errorf("IsIgnoredFile(%q) = %t; want %t", test.name, got, test.want)
		}
	}
}

func TestLoadConfigFileRequiredProvidersErrors(t *testing.T) {
	tests := map[string]struct {
		src         string
		wantSummary string
	}{
		"missing source": {
			`groundwork {
  required_providers {
    aws = {
      version = "~> 6.0"
    }
  }
}
`,
			"Missing provider source",
		},
		"not an object": {
			`groundwork {
  required_providers {
    aws = "~> 6.0"
  }
}
`,
			"Invalid provider requirement",
		},
		"unexpected attribute": {
			`groundwork {
  required_providers {
    aws = {
      source = "hashicorp/aws"
      verson = "~> 6.0"
    }
  }
}
`,
			"Invalid Attribute",
		},
		"unnormalized local name": {
			`groundwork {
  required_providers {
    AWS = {
      source = "hashicorp/aws"
    }
  }
}
`,
			"Invalid provider local name",
		},
		"source without namespace": {
			`groundwork {
  required_providers {
    aws = {
      source = "aws"
    }
  }
}
`,
			"Invalid provider source address",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "main.gw", []byte(test.src), 0644); err != nil {
				t.Fatal(err)
			}

			parser := NewParser(fs)
			_, diags := parser.LoadConfigFile("main.gw")
			if !diags.HasErrors() {
				t.Fatal("success; want errors")
			}
			found := false
			for _, diag := range diags {
				if diag.Summary == test.wantSummary {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no diagnostic with summary %q in:\n%s", test.wantSummary, diags.Error())
			}
		})
	}
}
