package metrics

import (
	"fmt"
	"math"

	"github.com/claude/healthdash/internal/models"
)

// ZoneName identifies a heart rate training zone.
type ZoneName string

const (
	ZoneLight     ZoneName = "light"
	ZoneModerate  ZoneName = "moderate"
	ZoneAerobic   ZoneName = "aerobic"
	ZoneAnaerobic ZoneName = "anaerobic"
	ZoneVO2Max    ZoneName = "vo2max"
)

// ZoneOrder is the output order of every zone breakdown.
var ZoneOrder = []ZoneName{ZoneLight, ZoneModerate, ZoneAerobic, ZoneAnaerobic, ZoneVO2Max}

// zonePercents are the lower bounds of each zone as a percentage of max HR.
var zonePercents = []float64{50, 60, 70, 80, 90}

// SecondsPerCountedSample is the weight given to one sample when zones are
// counted rather than time-weighted. Whole-day series arrive roughly once a
// minute.
const SecondsPerCountedSample = 60

// ZoneBound is the bpm range of one zone: [Min, Max). The vo2max zone also
// takes readings above Max.
type ZoneBound struct {
	Zone ZoneName `json:"zone"`
	Min  float64  `json:"min_bpm"`
	Max  float64  `json:"max_bpm"`
}

// ZoneBucket is the time spent in one zone.
type ZoneBucket struct {
	Zone            ZoneName `json:"zone"`
	DurationSeconds float64  `json:"duration_seconds"`
	Samples         int      `json:"samples"`
	Percentage      float64  `json:"percentage"`
}

// ValidateAge rejects ages that leave no usable max heart rate.
func ValidateAge(age int) error {
	if age <= 0 || age >= 120 {
		return fmt.Errorf("age must be between 1 and 119, got %d", age)
	}
	return nil
}

// MaxHeartRate estimates maximum heart rate as 220 - age.
func MaxHeartRate(age int) float64 {
	return float64(220 - age)
}

// Zones returns the five zone bounds for age, lightest first.
func Zones(age int) []ZoneBound {
	maxHR := MaxHeartRate(age)
	out := make([]ZoneBound, len(ZoneOrder))
	for i, z := range ZoneOrder {
		upper := 100.0
		if i+1 < len(zonePercents) {
			upper = zonePercents[i+1]
		}
		out[i] = ZoneBound{Zone: z, Min: maxHR * zonePercents[i] / 100, Max: maxHR * upper / 100}
	}
	return out
}

// Classify returns the zone bpm falls in. Readings below the light zone
// are baseline and report false.
func Classify(bpm float64, bounds []ZoneBound) (ZoneName, bool) {
	if len(bounds) == 0 || bpm < bounds[0].Min {
		return "", false
	}
	for _, b := range bounds[:len(bounds)-1] {
		if bpm < b.Max {
			return b.Zone, true
		}
	}
	return bounds[len(bounds)-1].Zone, true
}

// ZoneDurations credits each qualifying sample with the time until the next
// sample in the series, whatever that next sample's zone. The last sample
// has no successor and is credited zero seconds. samples must be sorted
// ascending by time.
func ZoneDurations(age int, samples []models.Sample) []ZoneBucket {
	bounds := Zones(age)
	buckets := emptyBuckets()
	for i, s := range samples {
		zone, ok := Classify(s.Value, bounds)
		if !ok {
			continue
		}
		var d float64
		if i+1 < len(samples) {
			d = math.Max(0, samples[i+1].Time.Sub(s.Time).Seconds())
		}
		b := &buckets[zoneIndex(zone)]
		b.DurationSeconds += d
		b.Samples++
	}
	return Percentages(buckets)
}

// ZoneCounts weights every qualifying sample equally, crediting
// SecondsPerCountedSample per sample.
func ZoneCounts(age int, samples []models.Sample) []ZoneBucket {
	bounds := Zones(age)
	buckets := emptyBuckets()
	for _, s := range samples {
		zone, ok := Classify(s.Value, bounds)
		if !ok {
			continue
		}
		b := &buckets[zoneIndex(zone)]
		b.DurationSeconds += SecondsPerCountedSample
		b.Samples++
	}
	return Percentages(buckets)
}

// Percentages fills in each bucket's share of the summed duration, as a
// percentage rounded to one decimal. All shares are 0 when the sum is 0.
func Percentages(buckets []ZoneBucket) []ZoneBucket {
	var total float64
	for _, b := range buckets {
		total += b.DurationSeconds
	}
	for i := range buckets {
		if total > 0 {
			buckets[i].Percentage = Round1(buckets[i].DurationSeconds / total * 100)
		} else {
			buckets[i].Percentage = 0
		}
	}
	return buckets
}

func emptyBuckets() []ZoneBucket {
	out := make([]ZoneBucket, len(ZoneOrder))
	for i, z := range ZoneOrder {
		out[i].Zone = z
	}
	return out
}

func zoneIndex(z ZoneName) int {
	for i, name := range ZoneOrder {
		if name == z {
			return i
		}
	}
	return 0
}
