package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navalhaapp/barber-booking/internal/domain/schedule"
	"github.com/navalhaapp/barber-booking/internal/httperr"
)

func TestValidateWorkIntervals(t *testing.T) {
	tests := []struct {
		name      string
		intervals []schedule.WorkInterval
		wantErr   bool
	}{
		{
			name: "válido com dois intervalos",
			intervals: []schedule.WorkInterval{
				{Start: "09:00", End: "12:00"},
				{Start: "14:00", End: "18:00"},
			},
		},
		{
			name:      "vazio é válido (dia fechado)",
			intervals: nil,
		},
		{
			name: "fora de ordem mas sem sobreposição",
			intervals: []schedule.WorkInterval{
				{Start: "14:00", End: "18:00"},
				{Start: "09:00", End: "12:00"},
			},
		},
		{
			name: "encostados são válidos",
			intervals: []schedule.WorkInterval{
				{Start: "09:00", End: "12:00"},
				{Start: "12:00", End: "18:00"},
			},
		},
		{
			name: "início igual ao fim",
			intervals: []schedule.WorkInterval{
				{Start: "09:00", End: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "início depois do fim",
			intervals: []schedule.WorkInterval{
				{Start: "12:00", End: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "sobreposição",
			intervals: []schedule.WorkInterval{
				{Start: "09:00", End: "12:00"},
				{Start: "11:00", End: "14:00"},
			},
			wantErr: true,
		},
		{
			name: "horário malformado",
			intervals: []schedule.WorkInterval{
				{Start: "9h00", End: "12:00"},
			},
			wantErr: true,
		},
		{
			name: "hora inexistente",
			intervals: []schedule.WorkInterval{
				{Start: "25:00", End: "26:00"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWorkIntervals(tt.intervals)
			if tt.wantErr {
				assert.True(t, httperr.IsBusiness(err, "invalid_interval"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
