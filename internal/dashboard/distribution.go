package dashboard

import "github.com/Freeeeeet/mgcc_bot/internal/model"

// Bucket is one slice of the teacher's performance chart
type Bucket struct {
	Name  string
	Count int
}

const (
	BucketExcellent = "Excellent (80+)"
	BucketAverage   = "Average (60-80)"
	BucketNeedsHelp = "Needs Help (<60)"
)

// Distribute groups results by score ratio: >=0.8, [0.6, 0.8) and <0.6
func Distribute(results []model.StudentResult) []Bucket {
	buckets := []Bucket{
		{Name: BucketExcellent},
		{Name: BucketAverage},
		{Name: BucketNeedsHelp},
	}

	for _, r := range results {
		switch ratio := r.Ratio(); {
		case ratio >= 0.8:
			buckets[0].Count++
		case ratio >= 0.6:
			buckets[1].Count++
		default:
			buckets[2].Count++
		}
	}

	return buckets
}
