// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	tests := []struct {
		name    string
		version string
		date    string
		commit  string
		want    [3]string
	}{
		{
			name:    "all set",
			version: "1.2.3",
			date:    "2026-10-16",
			commit:  "abc123",
			want:    [3]string{"1.2.3", "2026-10-16", "abc123"},
		},
		{
			name: "all blank",
			want: [3]string{NotAvailable, NotAvailable, NotAvailable},
		},
		{
			name:    "whitespace is blank",
			version: "  ",
			date:    "\t",
			commit:  " abc ",
			want:    [3]string{NotAvailable, NotAvailable, "abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewBuildInfo(tt.version, tt.date, tt.commit)
			assert.Equal(t, tt.want, [3]string{info.Version(), info.Date(), info.Commit()})
		})
	}
}

func TestBuildInfo_ZeroValue(t *testing.T) {
	var info BuildInfo
	assert.Equal(t, NotAvailable, info.Version())
	assert.Equal(t, NotAvailable, info.Date())
	assert.Equal(t, NotAvailable, info.Commit())
}
