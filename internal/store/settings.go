package store

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/epeers/portview/internal/models"
)

// FetchSettings refreshes every setting. Failures are recorded and the previous settings are kept.
func (s *Store) FetchSettings(ctx context.Context) {
	_ = s.fetchSettings(ctx)
}

func (s *Store) fetchSettings(ctx context.Context) error {
	run := s.begin(OpFetchSettings)
	defer run.end()

	settings, err := s.client.ListSettings(ctx)
	if err != nil {
		run.fail(err)
		return err
	}

	s.SetSettings(settings)
	run.succeed()
	return nil
}

// FetchSetting refreshes a single setting
func (s *Store) FetchSetting(ctx context.Context, key string) (*models.Setting, error) {
	run := s.begin(OpFetchSetting)
	defer run.end()

	setting, err := s.client.GetSetting(ctx, key)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.PutSetting(*setting)
	run.succeed()
	return setting, nil
}

// SaveSetting stores a setting on the backend. The value always travels as its
// string form (42 becomes "42", true becomes "true", nil becomes "null"), so
// numeric and boolean types are not preserved.
func (s *Store) SaveSetting(ctx context.Context, key string, value any, description *string) (*models.Setting, error) {
	run := s.begin(OpSaveSetting)
	defer run.end()

	req := &models.SaveSettingRequest{
		Key:         key,
		Value:       SettingValue(value),
		Description: description,
	}
	setting, err := s.client.SaveSetting(ctx, req)
	if err != nil {
		run.fail(err)
		return nil, err
	}

	s.PutSetting(*setting)
	run.succeed()
	return setting, nil
}

// SettingValue returns the wire form of a setting value, spelled the way a
// JavaScript client's String(value) would: numbers without exponents below
// 1e21, arrays joined with commas and objects as "[object Object]".
func SettingValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatSettingNumber(v)
	case float32:
		return formatSettingNumber(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return formatSettingNumber(f)
		}
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			if item != nil {
				parts[i] = SettingValue(item)
			}
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return fmt.Sprint(v)
	}
}

func formatSettingNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		s = strings.Replace(s, "e+0", "e+", 1)
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
