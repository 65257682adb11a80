package ledger

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		rides []Ride
		want  Summary
	}{
		{
			name:  "no rides",
			rides: nil,
			want:  Summary{},
		},
		{
			name:  "one unpaid ride",
			rides: []Ride{{}},
			want:  Summary{TotalRides: 1, RidesPaid: 0, UnpaidCount: 1, BalanceDue: 10},
		},
		{
			name:  "paid rides carry no balance",
			rides: []Ride{{PaymentStatus: true}, {PaymentStatus: true}},
			want:  Summary{TotalRides: 2, RidesPaid: 2, UnpaidCount: 0, BalanceDue: 0},
		},
		{
			name:  "cancelled unpaid ride carries no balance",
			rides: []Ride{{Cancelled: true}},
			want:  Summary{TotalRides: 1, RidesPaid: 1, UnpaidCount: 0, BalanceDue: 0},
		},
		{
			name: "mixed",
			rides: []Ride{
				{},                     // unpaid
				{PaymentStatus: true},  // paid
				{Cancelled: true},      // cancelled, unpaid
				{},                     // unpaid
				{PaymentStatus: true, Cancelled: true}, // paid and cancelled
			},
			want: Summary{TotalRides: 5, RidesPaid: 3, UnpaidCount: 2, BalanceDue: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.rides)
			if got != tt.want {
				t.Fatalf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
