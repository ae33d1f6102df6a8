package sheetson_test

import (
	"encoding/json"
	"testing"

	sheetson "github.com/Mr-KAM/go-sheetson"
)

func TestWhere_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		where sheetson.Where
		want  string
	}{
		{
			name:  "literal equality",
			where: sheetson.Where{"country": sheetson.Eq("USA")},
			want:  `{"country":"USA"}`,
		},
		{
			name:  "numeric literal",
			where: sheetson.Where{"population": sheetson.Eq(1000000)},
			want:  `{"population":1000000}`,
		},
		{
			name:  "single operator",
			where: sheetson.Where{"population": sheetson.Gte(10000000)},
			want:  `{"population":{"$gte":10000000}}`,
		},
		{
			name:  "chained operators",
			where: sheetson.Where{"population": sheetson.Gte(10000000).Lte(30000000)},
			want:  `{"population":{"$gte":10000000,"$lte":30000000}}`,
		},
		{
			name:  "in operator",
			where: sheetson.Where{"country": sheetson.In("USA", "France", "Japan")},
			want:  `{"country":{"$in":["USA","France","Japan"]}}`,
		},
		{
			name:  "not equal",
			where: sheetson.Where{"country": sheetson.Ne("USA")},
			want:  `{"country":{"$ne":"USA"}}`,
		},
		{
			name: "multiple columns",
			where: sheetson.Where{
				"country":    sheetson.Eq("USA"),
				"population": sheetson.Gt(500000),
			},
			want: `{"country":"USA","population":{"$gt":500000}}`,
		},
		{
			name:  "nil condition",
			where: sheetson.Where{"notes": nil},
			want:  `{"notes":null}`,
		},
		{
			name:  "less than operators",
			where: sheetson.Where{"population": sheetson.Lt(100).Gt(10)},
			want:  `{"population":{"$gt":10,"$lt":100}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.where)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOperators_Lte_Standalone(t *testing.T) {
	got, err := json.Marshal(sheetson.Where{"age": sheetson.Lte(65)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"age":{"$lte":65}}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
