package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Customer platform names as they appear in the PHD customers table.
const (
	PlatformSRT       = "SRT Tool"
	PlatformFeather   = "Feather"
	PlatformFairtable = "Fairtable"
)

// Well-known customer ids. The scale generators key platform behavior off
// these rather than off customer names.
const (
	CustomerMeta      = 1
	CustomerOpenAI    = 2
	CustomerGoogle    = 3
	CustomerXAI       = 4
	CustomerAnthropic = 5
)

// Customer holds the static business configuration for one customer.
type Customer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Platform       string    `json:"platform"`
	BillingCycleID int       `json:"billing_cycle_id"`
	PrimarySPLID   int       `json:"primary_spl_id"`
	StartQuarter   Month     `json:"start_quarter"`
	BillingRateLo  float64   `json:"billing_rate_lo"`
	BillingRateHi  float64   `json:"billing_rate_hi"`
	TakeRateLo     float64   `json:"take_rate_lo"`
	TakeRateHi     float64   `json:"take_rate_hi"`
	RevenueShare   float64   `json:"revenue_share"`
	TaskTypes      []string  `json:"task_types"`
	BaseID         string    `json:"base_id,omitempty"` // Fairtable customers only
	DomainFocus    []int     `json:"domain_focus"`
}

func defaultCustomers() map[int]Customer {
	return map[int]Customer{
		CustomerMeta: {
			ID: CustomerMeta, Name: "Meta", Platform: PlatformSRT,
			BillingCycleID: 2, PrimarySPLID: 1,
			StartQuarter:  Month{2023, 7},
			BillingRateLo: 85, BillingRateHi: 130,
			TakeRateLo: 0.28, TakeRateHi: 0.32,
			RevenueShare: 0.30,
			TaskTypes:    []string{"preference_ranking", "safety_labeling", "prompt_response"},
			DomainFocus:  []int{1, 2, 3, 5, 6},
		},
		CustomerOpenAI: {
			ID: CustomerOpenAI, Name: "OpenAI", Platform: PlatformFeather,
			BillingCycleID: 1, PrimarySPLID: 2,
			StartQuarter:  Month{2023, 10},
			BillingRateLo: 85, BillingRateHi: 140,
			TakeRateLo: 0.28, TakeRateHi: 0.32,
			RevenueShare: 0.25,
			TaskTypes:    []string{"rlhf_ranking", "code_review", "text_generation"},
			DomainFocus:  []int{1, 2, 3, 5, 9, 54, 56},
		},
		CustomerGoogle: {
			ID: CustomerGoogle, Name: "Google", Platform: PlatformFairtable,
			BillingCycleID: 1, PrimarySPLID: 3,
			StartQuarter:  Month{2024, 1},
			BillingRateLo: 100, BillingRateHi: 250,
			TakeRateLo: 0.25, TakeRateHi: 0.30,
			RevenueShare: 0.20,
			TaskTypes:    []string{"medical_evaluation", "legal_evaluation", "domain_qa", "science_evaluation"},
			BaseID:       "base_google",
			DomainFocus:  []int{22, 27, 28, 29, 36, 37, 38, 40, 50, 80, 85, 95, 98},
		},
		CustomerXAI: {
			ID: CustomerXAI, Name: "xAI", Platform: PlatformFairtable,
			BillingCycleID: 3, PrimarySPLID: 4,
			StartQuarter:  Month{2024, 4},
			BillingRateLo: 80, BillingRateHi: 120,
			TakeRateLo: 0.30, TakeRateHi: 0.35,
			RevenueShare: 0.12,
			TaskTypes:    []string{"code_generation", "code_review", "red_team", "adversarial_prompt"},
			BaseID:       "base_xai",
			DomainFocus:  []int{1, 2, 3, 5, 6, 50},
		},
		CustomerAnthropic: {
			ID: CustomerAnthropic, Name: "Anthropic", Platform: PlatformFairtable,
			BillingCycleID: 4, PrimarySPLID: 5,
			StartQuarter:  Month{2024, 7},
			BillingRateLo: 90, BillingRateHi: 180,
			TakeRateLo: 0.27, TakeRateHi: 0.30,
			RevenueShare: 0.13,
			TaskTypes:    []string{"science_evaluation", "humanities_evaluation", "domain_qa", "red_team"},
			BaseID:       "base_anthropic",
			DomainFocus:  []int{80, 85, 88, 95, 98, 106, 108, 129, 130, 131},
		},
	}
}

// ValidateShares enforces the structural invariant that revenue shares sum
// to 1.0 within 0.01. A violation is a configuration bug, not a runtime
// condition, so callers are expected to treat it as fatal.
func ValidateShares(customers map[int]Customer) error {
	var sum float64
	for _, c := range customers {
		sum += c.RevenueShare
	}
	if math.Abs(sum-1.0) >= 0.01 {
		return fmt.Errorf("customer revenue shares sum to %.4f, want 1.0 ±0.01", sum)
	}
	return nil
}

// LoadCustomers returns the built-in customer table after validation.
func LoadCustomers() (map[int]Customer, error) {
	customers := defaultCustomers()
	if err := ValidateShares(customers); err != nil {
		return nil, err
	}
	return customers, nil
}

const customersSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["id", "name", "platform", "billing_cycle_id", "start_quarter",
                 "billing_rate_lo", "billing_rate_hi", "take_rate_lo", "take_rate_hi",
                 "revenue_share", "task_types", "domain_focus"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "name": {"type": "string", "minLength": 1},
      "platform": {"enum": ["SRT Tool", "Feather", "Fairtable"]},
      "billing_cycle_id": {"type": "integer", "minimum": 1},
      "primary_spl_id": {"type": "integer", "minimum": 1},
      "start_quarter": {
        "type": "object",
        "required": ["Year", "Month"],
        "properties": {
          "Year": {"type": "integer", "minimum": 2020},
          "Month": {"type": "integer", "minimum": 1, "maximum": 12}
        }
      },
      "billing_rate_lo": {"type": "number", "exclusiveMinimum": 0},
      "billing_rate_hi": {"type": "number", "exclusiveMinimum": 0},
      "take_rate_lo": {"type": "number", "minimum": 0, "maximum": 1},
      "take_rate_hi": {"type": "number", "minimum": 0, "maximum": 1},
      "revenue_share": {"type": "number", "minimum": 0, "maximum": 1},
      "task_types": {"type": "array", "items": {"type": "string"}, "minItems": 1},
      "base_id": {"type": "string"},
      "domain_focus": {"type": "array", "items": {"type": "integer"}, "minItems": 1}
    }
  }
}`

// LoadCustomersFile reads a customer-table override from a JSON file,
// validates it against the embedded schema, and applies the same share-sum
// invariant as the built-in table.
func LoadCustomersFile(path string) (map[int]Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read customers file: %w", err)
	}

	schema, err := jsonschema.CompileString("customers.schema.json", customersSchema)
	if err != nil {
		return nil, fmt.Errorf("compile customers schema: %w", err)
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse customers file: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate customers file: %w", err)
	}

	var list []Customer
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decode customers file: %w", err)
	}
	customers := make(map[int]Customer, len(list))
	for _, c := range list {
		if _, dup := customers[c.ID]; dup {
			return nil, fmt.Errorf("duplicate customer id %d", c.ID)
		}
		customers[c.ID] = c
	}
	if err := ValidateShares(customers); err != nil {
		return nil, err
	}
	return customers, nil
}
