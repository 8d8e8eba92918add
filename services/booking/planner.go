package booking

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var seatLetters = [6]string{"A", "B", "C", "D", "E", "F"}

var departureMinutes = [4]int{0, 15, 30, 45}

// FlightPlan carries the generated flight fields and seat assignments for a
// new booking. They are written once at creation time and never mutated.
type FlightPlan struct {
	FlightID      string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Seats         []string
}

// FlightPlanner produces a flight plan for a travel date and party size.
// Implementations are pluggable so tests can inject a seeded generator and
// assert exact outputs.
type FlightPlanner interface {
	Plan(travelDate time.Time, travelers int) FlightPlan
}

type randomFlightPlanner struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFlightPlanner returns a planner whose output is fully determined by the
// seed.
func NewFlightPlanner(seed int64) FlightPlanner {
	return &randomFlightPlanner{rng: rand.New(rand.NewSource(seed))}
}

// Plan generates an "AI"-prefixed flight number, a departure between 06:00
// and 18:00 on the travel date at a quarter-hour mark, an arrival 2-10 hours
// later, and one seat per traveler cycling A-F from a row in [10,30).
func (p *randomFlightPlanner) Plan(travelDate time.Time, travelers int) FlightPlan {
	p.mu.Lock()
	defer p.mu.Unlock()

	flightID := fmt.Sprintf("AI%d", p.rng.Intn(9000)+1000)

	departure := time.Date(
		travelDate.Year(), travelDate.Month(), travelDate.Day(),
		p.rng.Intn(12)+6, departureMinutes[p.rng.Intn(4)], 0, 0,
		travelDate.Location(),
	)
	arrival := departure.Add(time.Duration(p.rng.Intn(8)+2) * time.Hour)

	startRow := p.rng.Intn(20) + 10
	seats := make([]string, 0, travelers)
	for i := 0; i < travelers; i++ {
		seats = append(seats, fmt.Sprintf("%d%s", startRow+i/6, seatLetters[i%6]))
	}

	return FlightPlan{
		FlightID:      flightID,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Seats:         seats,
	}
}
