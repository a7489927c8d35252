package entities

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMakeCustomGroupKey(t *testing.T) {
	tests := []struct {
		name  string
		sizes []SizeLabel
		want  string
	}{
		{"numeric_sorted", []SizeLabel{"34", "30", "32"}, "30, 32, 34"},
		{"preset_sorted", []SizeLabel{"L", "S", "M"}, "S, M, L"},
		{"single", []SizeLabel{"XL"}, "XL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeCustomGroupKey(tt.sizes); got != tt.want {
				t.Errorf("MakeCustomGroupKey(%v) = %q, want %q", tt.sizes, got, tt.want)
			}
		})
	}
}

func TestSplitCustomGroupKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []SizeLabel
	}{
		{"plain", "30, 32, 34", []SizeLabel{"30", "32", "34"}},
		{"ragged_whitespace", " 30 ,32,  34 ", []SizeLabel{"30", "32", "34"}},
		{"empty_segments_skipped", "30,,32", []SizeLabel{"30", "32"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitCustomGroupKey(tt.key); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitCustomGroupKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestSplitCustomGroupKey_RoundTrip(t *testing.T) {
	key := MakeCustomGroupKey([]SizeLabel{"32", "30"})
	if got := SplitCustomGroupKey(key); !reflect.DeepEqual(got, []SizeLabel{"30", "32"}) {
		t.Errorf("round trip of %q = %v", key, got)
	}
}

func TestBOMComponent_UsageKeys(t *testing.T) {
	component := NewBOMComponent("Main Label", CategoryTrim, UsageByIndividualSize)
	component.SetRate("34", decimal.NewFromInt(1))
	component.SetRate("9", decimal.NewFromInt(1))
	component.SetRate("30", decimal.NewFromInt(1))

	want := []string{"9", "30", "34"}
	if got := component.UsageKeys(); !reflect.DeepEqual(got, want) {
		t.Errorf("UsageKeys() = %v, want %v", got, want)
	}
}

func TestParseConsumptionRule(t *testing.T) {
	tests := []struct {
		in      string
		want    ConsumptionRule
		wantErr bool
	}{
		{"Uniform", UsageUniform, false},
		{"bycolor", UsageByColor, false},
		{"BySizeGroup", UsageBySizeGroup, false},
		{"ByIndividualSize", UsageByIndividualSize, false},
		{"ByCustomGroup", UsageByCustomGroup, false},
		{"nonsense", UsageUniform, true},
	}

	for _, tt := range tests {
		got, err := ParseConsumptionRule(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseConsumptionRule(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseConsumptionRule(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
