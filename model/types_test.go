package model_test

import (
	"testing"

	"github.com/mahmudhasan/clothing-shop/model"
)

func TestStringList_Value(t *testing.T) {
	tests := []struct {
		name string
		in   model.StringList
		want interface{}
	}{
		{name: "nil list", in: nil, want: nil},
		{name: "empty list", in: model.StringList{}, want: `[]`},
		{name: "values", in: model.StringList{"S", "M"}, want: `["S","M"]`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     interface{}
		want    model.StringList
		wantErr bool
	}{
		{name: "nil column", src: nil, want: nil},
		{name: "empty string", src: "", want: model.StringList{}},
		{name: "json array bytes", src: []byte(`["S","M"]`), want: model.StringList{"S", "M"}},
		{name: "json array string", src: `["XL"]`, want: model.StringList{"XL"}},
		{name: "legacy bare string", src: "No Data in Multiple Image Field", want: model.StringList{"No Data in Multiple Image Field"}},
		{name: "unsupported type", src: 42, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var got model.StringList
			err := got.Scan(tt.src)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Scan() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Scan()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
