package calculator

import (
	"strings"

	"github.com/travigo/bikeshare/pkg/tripdata"
	"golang.org/x/exp/slices"
)

type Share struct {
	Category string
	Count    int
	Percent  float64
}

// Distribution counts the non-blank values of a categorical field, most
// common first.
type Distribution struct {
	Total  int
	Shares []Share
}

type BirthYearStats struct {
	Earliest   int
	Latest     int
	MostCommon int
}

// UserStats holds the three rider breakdowns. Genders and BirthYears are nil
// with a nil error when the city's dataset has no such column; a non-nil error
// means the column exists but had nothing to summarise.
type UserStats struct {
	UserTypes    Distribution
	UserTypesErr error

	Genders    *Distribution
	GendersErr error

	BirthYears    *BirthYearStats
	BirthYearsErr error
}

func GetUserStats(collection *tripdata.Collection) (UserStats, error) {
	var stats UserStats

	stats.UserTypes, stats.UserTypesErr = GetUserTypes(collection)
	stats.Genders, stats.GendersErr = GetGenders(collection)
	stats.BirthYears, stats.BirthYearsErr = GetBirthYears(collection)

	if collection.Empty() {
		return stats, ErrUndefinedStatistic
	}

	return stats, nil
}

func GetUserTypes(collection *tripdata.Collection) (Distribution, error) {
	var userTypes []string
	for _, record := range collection.Records {
		userTypes = append(userTypes, record.UserType)
	}

	return distribution(userTypes)
}

func GetGenders(collection *tripdata.Collection) (*Distribution, error) {
	if !collection.Schema.Gender {
		return nil, nil
	}

	var genders []string
	for _, record := range collection.Records {
		genders = append(genders, record.Gender)
	}

	genderDistribution, err := distribution(genders)
	if err != nil {
		return nil, err
	}

	return &genderDistribution, nil
}

func GetBirthYears(collection *tripdata.Collection) (*BirthYearStats, error) {
	if !collection.Schema.BirthYear {
		return nil, nil
	}

	years := map[int]int{}
	stats := &BirthYearStats{}
	first := true

	for _, record := range collection.Records {
		if !record.HasBirthYear {
			continue
		}

		years[record.BirthYear] += 1

		if first || record.BirthYear < stats.Earliest {
			stats.Earliest = record.BirthYear
		}
		if first || record.BirthYear > stats.Latest {
			stats.Latest = record.BirthYear
		}
		first = false
	}

	mostCommon, err := Mode(years)
	if err != nil {
		return nil, err
	}
	stats.MostCommon = mostCommon

	return stats, nil
}

func distribution(values []string) (Distribution, error) {
	countMap := map[string]int{}
	total := 0

	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}

		countMap[value] += 1
		total += 1
	}

	if total == 0 {
		return Distribution{}, ErrUndefinedStatistic
	}

	shares := make([]Share, 0, len(countMap))
	for category, count := range countMap {
		shares = append(shares, Share{
			Category: category,
			Count:    count,
			Percent:  float64(count) / float64(total) * 100,
		})
	}

	slices.SortFunc(shares, func(a, b Share) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Category, b.Category)
	})

	return Distribution{
		Total:  total,
		Shares: shares,
	}, nil
}
