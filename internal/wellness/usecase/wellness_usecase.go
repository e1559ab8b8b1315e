package usecase

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	authusecase "wellness-backend/internal/auth/usecase"
	"wellness-backend/internal/wellness/domain"
	"wellness-backend/pkg/existapi"
)

// wellnessUsecase implements WellnessUsecase
type wellnessUsecase struct {
	authUsecase authusecase.AuthUsecase
	client      *existapi.Client
	mappings    []domain.MetricMapping
}

func NewWellnessUsecase(authUsecase authusecase.AuthUsecase, client *existapi.Client, mappings []domain.MetricMapping) WellnessUsecase {
	return &wellnessUsecase{
		authUsecase: authUsecase,
		client:      client,
		mappings:    mappings,
	}
}

func (u *wellnessUsecase) GetWellnessData(ctx context.Context) (*domain.WellnessData, error) {
	credential, ok := u.authUsecase.ResolveCredential()
	if !ok {
		return nil, ErrNoCredential
	}

	records, err := u.client.FetchAttributesWithValues(ctx, credential, domain.AttributeNames(u.mappings))
	if err != nil {
		return nil, err
	}

	data := Normalize(records, u.mappings)
	if data.TotalSamples() == 0 {
		log.Printf("[WARN] upstream returned no usable wellness samples")
		return nil, ErrNoData
	}

	return data, nil
}

func (u *wellnessUsecase) GetAvailableAttributes(ctx context.Context) (json.RawMessage, error) {
	credential, ok := u.authUsecase.ResolveCredential()
	if !ok {
		return nil, ErrNoCredential
	}

	return u.client.FetchAvailableAttributes(ctx, credential)
}

// keyedSample carries the source ISO date alongside a sample while the
// series is being sorted. The ISO date never reaches the output.
type keyedSample struct {
	isoDate string
	sample  domain.MetricSample
}

// Normalize maps raw provider records onto the fixed dashboard dataset:
// null samples are dropped, minute-based attributes are converted to
// hours, dates become short display strings, and each series is sorted
// chronologically. It never fails; missing attributes yield empty series.
func Normalize(records []domain.AttributeRecord, mappings []domain.MetricMapping) *domain.WellnessData {
	data := domain.NewWellnessData()

	for _, mapping := range mappings {
		record, found := findRecord(records, mapping.Attribute)
		if !found {
			continue
		}

		keyed := make([]keyedSample, 0, len(record.Values))
		for _, v := range record.Values {
			if v.Value == nil {
				continue
			}

			value := *v.Value
			if mapping.MinutesToHours {
				value /= 60
			}

			keyed = append(keyed, keyedSample{
				isoDate: v.Date,
				sample: domain.MetricSample{
					Date:  displayDate(v.Date),
					Value: value,
					Unit:  mapping.Unit,
				},
			})
		}

		// YYYY-MM-DD sorts lexicographically in chronological order.
		sort.SliceStable(keyed, func(i, j int) bool {
			return keyed[i].isoDate < keyed[j].isoDate
		})

		samples := make([]domain.MetricSample, 0, len(keyed))
		for _, k := range keyed {
			samples = append(samples, k.sample)
		}
		data.SetSeries(mapping.Metric, samples)
	}

	return data
}

func findRecord(records []domain.AttributeRecord, attribute string) (domain.AttributeRecord, bool) {
	for _, r := range records {
		if r.Name == attribute {
			return r, true
		}
	}
	return domain.AttributeRecord{}, false
}

// displayDate turns "2025-01-05" into "Jan 5". The date is rebuilt from
// its year/month/day components so the result never shifts by a day
// under non-UTC local time zones, which parsing the string as a
// timestamp would risk.
func displayDate(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}

	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.Atoi(parts[2])
	if errY != nil || errM != nil || errD != nil {
		return isoDate
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).Format("Jan 2")
}
