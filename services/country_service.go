package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"biztrack/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Country là một quốc gia kèm cờ, lấy từ API restcountries
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

const (
	countriesAPIURL   = "https://restcountries.com/v3.1/all?fields=name,flags,cca2"
	countriesCacheKey = "countries:all"
	countriesCacheTTL = 24 * time.Hour
)

type restCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2  string `json:"cca2"`
	Flags struct {
		SVG string `json:"svg"`
		PNG string `json:"png"`
	} `json:"flags"`
}

type CountryService struct {
	rdb    *redis.Client
	client *http.Client
	logger logger.Logger
}

type CountryServiceOptions struct {
	Redis  *redis.Client
	Client *http.Client
	Logger logger.Logger
}

func NewCountryService(opts CountryServiceOptions) *CountryService {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &CountryService{
		rdb:    opts.Redis,
		client: opts.Client,
		logger: opts.Logger,
	}
}

// GetCountries trả về danh sách quốc gia sắp xếp theo tên, cache Redis 24h
func (s *CountryService) GetCountries(ctx context.Context) ([]Country, error) {
	if s.rdb != nil {
		var cached []Country
		if err := GetFromRedis(ctx, s.rdb, countriesCacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, countriesAPIURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch countries: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("countries API returned status %d", resp.StatusCode)
	}

	var raw []restCountry
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse countries response: %w", err)
	}

	countries := make([]Country, 0, len(raw))
	for _, rc := range raw {
		flag := rc.Flags.SVG
		if flag == "" {
			flag = rc.Flags.PNG
		}
		countries = append(countries, Country{
			Code: rc.CCA2,
			Name: rc.Name.Common,
			Flag: flag,
		})
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, countriesCacheKey, countries, countriesCacheTTL); err != nil {
			s.logger.Warn("không cache được danh sách quốc gia: %v", err)
		}
	}

	return countries, nil
}

// Chuẩn hóa chuỗi để so khớp: bỏ dấu, viết thường
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// SearchCountries lọc danh sách theo query: ưu tiên khớp substring,
// sau đó đến kết quả gần đúng từ closestmatch xếp theo độ tương đồng.
func SearchCountries(countries []Country, query string, limit int) []Country {
	q := normalizeInput(query)
	if q == "" || limit <= 0 {
		return countries
	}

	byName := make(map[string]Country, len(countries))
	keywords := make([]string, 0, len(countries))
	for _, c := range countries {
		name := normalizeInput(c.Name)
		byName[name] = c
		keywords = append(keywords, name)
	}

	seen := make(map[string]bool)
	var result []Country
	for _, name := range keywords {
		if strings.Contains(name, q) || strings.EqualFold(byName[name].Code, q) {
			result = append(result, byName[name])
			seen[name] = true
		}
	}

	cm := closestmatch.New(keywords, []int{2, 3})
	fuzzy := cm.ClosestN(q, limit)
	sort.Slice(fuzzy, func(i, j int) bool {
		return calculateSimilarity(q, fuzzy[i]) > calculateSimilarity(q, fuzzy[j])
	})
	for _, name := range fuzzy {
		if seen[name] {
			continue
		}
		result = append(result, byName[name])
		seen[name] = true
	}

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}
