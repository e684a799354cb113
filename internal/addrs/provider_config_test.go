// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package addrs

import (
	"testing"
)

func TestLocalProviderConfigString(t *testing.T) {
	tests := []struct {
		Addr LocalProviderConfig
		Want string
	}{
		{LocalProviderConfig{LocalName: "aws"}, "provider.aws"},
		{LocalProviderConfig{LocalName: "aws", Alias: "ap-south-1"}, "provider.aws.ap-south-1"},
	}

	for _, test := range tests {
		if got := test.Addr.String(); got != test.Want {
			t.Errorf("wrong result for %#v\ngot:  %s\nwant: %s", test.Addr, got, test.Want)
		}
	}
}

func TestRootProviderConfigString(t *testing.T) {
	aws := MustParseProviderSourceString("hashicorp/aws")

	tests := []struct {
		Addr        RootProviderConfig
		Want        string
		WantDisplay string
	}{
		{
			RootProviderConfig{Provider: aws},
			`provider["registry.terraform.io/hashicorp/aws"]`,
			`provider["hashicorp/aws"]`,
		},
		{
			RootProviderConfig{Provider: aws, Alias: "us_east_1"},
			`provider["registry.terraform.io/hashicorp/aws"].us_east_1`,
			`provider["hashicorp/aws"].us_east_1`,
		},
	}

	for _, test := range tests {
		if got := test.Addr.String(); got != test.Want {
			t.Errorf("wrong String result\ngot:  %s\nwant: %s", got, test.Want)
		}
		if got := test.Addr.ForDisplay(); got != test.WantDisplay {
			t.Errorf("wrong ForDisplay result\ngot:  %s\nwant: %s", got, test.WantDisplay)
		}
	}
}
