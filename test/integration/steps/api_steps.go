package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

var errNoTestContext = errors.New("test context not found")

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func theCurrentTimeIs(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	tc.clock.SetCurrentTime(current)
	return nil
}

// theFollowingTransactionsExist creates one transaction per table row through the API.
// The header row names the request fields: type, amount, category, date and note.
func theFollowingTransactionsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	if len(table.Rows) < 2 {
		return errors.New("transaction table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	for _, row := range table.Rows[1:] {
		payload := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			payload[header[i].Value] = cell.Value
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		if err := tc.executeRequest(http.MethodPost, "/api/v1/transactions", body); err != nil {
			return err
		}
		if tc.response.StatusCode != http.StatusCreated {
			return fmt.Errorf("failed to create transaction %v: status %d, body: %s",
				payload, tc.response.StatusCode, string(tc.responseBody))
		}
	}
	return nil
}

func theStoreShouldHold(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	if count := tc.injector.Store.Count(nil); count != expected {
		return fmt.Errorf("expected %d transactions in the store, got %d", expected, count)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	return tc.executeRequest(method, tc.replacePlaceholders(endpoint), nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(tc.replacePlaceholders(body.Content))
	}
	return tc.executeRequest(method, tc.replacePlaceholders(endpoint), payload)
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	tc.requestHeaders[header] = value
	return nil
}

// replacePlaceholders expands {{transaction_id}} to the last created id and
// {{transaction_id:Name}} to the newest id created under category Name.
func (tc *TestContext) replacePlaceholders(content string) string {
	for name, id := range tc.transactionIDs {
		content = strings.ReplaceAll(content, "{{transaction_id:"+name+"}}", id)
	}
	return strings.ReplaceAll(content, "{{transaction_id}}", tc.lastTransactionID)
}

func (tc *TestContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if method == http.MethodPost && resp.StatusCode == http.StatusCreated {
		tc.rememberCreatedTransaction()
	}
	return nil
}

func (tc *TestContext) rememberCreatedTransaction() {
	var created struct {
		ID       string `json:"id"`
		Category struct {
			Name string `json:"name"`
		} `json:"category"`
	}
	if err := json.Unmarshal(tc.responseBody, &created); err != nil || created.ID == "" {
		return
	}
	tc.lastTransactionID = created.ID
	tc.transactionIDs[created.Category.Name] = created.ID
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	if tc.response == nil {
		return errors.New("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	_, err := responseField(ctx, field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, expected int) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array: %v", field, value)
	}
	if len(items) != expected {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, expected, len(items))
	}
	return nil
}

func theResponseHeaderShouldBe(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	if tc.response == nil {
		return errors.New("no response received")
	}
	if actual := tc.response.Header.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func theResponseHeaderShouldContain(ctx context.Context, header, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return errNoTestContext
	}
	if tc.response == nil {
		return errors.New("no response received")
	}
	if actual := tc.response.Header.Get(header); !strings.Contains(actual, expected) {
		return fmt.Errorf("header '%s' does not contain '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func responseField(ctx context.Context, field string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, errNoTestContext
	}
	if tc.response == nil {
		return nil, errors.New("no response received")
	}

	var body any
	if err := json.Unmarshal(tc.responseBody, &body); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return nil, fmt.Errorf("field '%s' not found in response: %s", field, string(tc.responseBody))
	}
	return value, nil
}

// getFieldValue walks a dot separated path. Numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
