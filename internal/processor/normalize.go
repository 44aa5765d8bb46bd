package processor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Address is a billing or shipping address as reported by the processor
type Address struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// IsZero reports whether no field is set
func (a *Address) IsZero() bool {
	return a == nil || *a == Address{}
}

// Record is one processor transaction in canonical form
type Record struct {
	CreatedAt          *time.Time
	UpdatedAt          *time.Time
	SettledAt          *time.Time
	ProcessorUpdatedAt *time.Time
	Billing            *Address
	Shipping           *Address
	// Err is set when the record could not be normalized
	Err               error
	ID                string
	CustomerID        string
	SubscriptionID    string
	SettlementBatchID string
	Type              string
	Kind              string
	Status            string
	PaymentMethod     string
	ResponseCode      string
	ResponseMessage   string
	IPAddress         string
	Description       string
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Raw               json.RawMessage
	AmountCents       int64
}

// Page is one page of a transaction search
type Page struct {
	// HasMore is nil when the processor gave no explicit signal
	HasMore    *bool
	Records    []Record
	Page       int
	PageSize   int
	TotalPages int
	TotalCount int
}

var (
	recordKeys     = []string{"data", "transactions", "results", "items", "records"}
	paginationKeys = []string{"pagination", "meta", "paging"}
	timeLayouts    = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}
)

// ParsePage normalizes a search response body. requested is the page that
// was asked for and is used when the body does not echo it.
func ParsePage(body []byte, requested PageRequest) (*Page, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty response body")
	}

	var items []json.RawMessage
	var envelope map[string]json.RawMessage

	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, fmt.Errorf("failed to decode record array: %w", err)
		}
		envelope = map[string]json.RawMessage{}
	case '{':
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode response object: %w", err)
		}
		var err error
		items, err = findRecords(envelope, 2)
		if err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("response is not a JSON object or array")
	}

	page := &Page{
		Page:     requested.Page,
		PageSize: requested.PageSize,
		Records:  make([]Record, 0, len(items)),
	}
	applyPagination(page, envelope)

	for _, item := range items {
		page.Records = append(page.Records, NormalizeRecord(item))
	}

	return page, nil
}

func findRecords(obj map[string]json.RawMessage, depth int) ([]json.RawMessage, error) {
	for _, key := range recordKeys {
		raw, ok := lookupRaw(obj, key)
		if !ok || isNull(raw) {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
		var nested map[string]json.RawMessage
		if depth > 1 && json.Unmarshal(raw, &nested) == nil {
			if items, err := findRecords(nested, depth-1); err == nil {
				for k, v := range nested {
					if _, exists := obj[k]; !exists {
						obj[k] = v
					}
				}
				return items, nil
			}
		}
	}
	return nil, fmt.Errorf("no record array under any of %s", strings.Join(recordKeys, ", "))
}

func applyPagination(page *Page, envelope map[string]json.RawMessage) {
	fields := fieldMap{}
	for _, key := range paginationKeys {
		if raw, ok := lookupRaw(envelope, key); ok {
			_ = decodeFields(raw, fields)
		}
	}
	for k, v := range envelope {
		if _, ok := fields[normalizeKey(k)]; !ok {
			var val any
			if decodeValue(v, &val) == nil {
				fields[normalizeKey(k)] = val
			}
		}
	}

	if n, ok := fields.int("page", "currentpage", "pagenumber"); ok && n > 0 {
		page.Page = n
	}
	if n, ok := fields.int("pagesize", "perpage", "limit"); ok && n > 0 {
		page.PageSize = n
	}
	if n, ok := fields.int("totalpages", "pagecount", "lastpage"); ok {
		page.TotalPages = n
	}
	if n, ok := fields.int("total", "totalcount", "totalrecords", "totalitems", "count"); ok {
		page.TotalCount = n
	}
	if b, ok := fields.bool("hasmore", "hasnextpage", "more"); ok {
		page.HasMore = &b
	}
}

// NormalizeRecord maps one processor record into canonical form. Failures
// are reported on Record.Err rather than returned.
func NormalizeRecord(raw json.RawMessage) Record {
	rec := Record{Raw: raw}

	fields := fieldMap{}
	if err := decodeFields(raw, fields); err != nil {
		rec.Err = fmt.Errorf("failed to decode record: %w", err)
		return rec
	}

	rec.ID = fields.string("id", "transactionid", "txnid")
	if rec.ID == "" {
		rec.Err = ErrMissingID
		return rec
	}

	customer := fields.object("customer")
	rec.Billing = fields.address("billing", "billingaddress", "billto")
	rec.Shipping = fields.address("shipping", "shippingaddress", "shipto")

	rec.CustomerID = firstNonEmpty(fields.string("customerid", "donorid"), customer.string("id"))
	rec.SubscriptionID = fields.string("subscriptionid", "recurringid", "planid")
	rec.SettlementBatchID = fields.string("settlementbatchid", "batchid")
	rec.Type = fields.string("type", "transactiontype")
	rec.Kind = strings.ToUpper(fields.string("kind", "category"))
	rec.Status = strings.ToUpper(fields.string("status", "transactionstatus", "state"))
	rec.PaymentMethod = firstNonEmpty(
		fields.string("paymentmethod", "paymenttype", "method"),
		fields.object("paymentmethod").string("type"),
	)
	rec.ResponseCode = fields.string("responsecode", "processorresponsecode")
	rec.ResponseMessage = fields.string("responsemessage", "processorresponsetext", "responsetext")
	rec.IPAddress = fields.string("ipaddress", "customerip", "ip")
	rec.Description = fields.string("description", "memo", "orderdescription")

	billing := rec.Billing
	if billing == nil {
		billing = &Address{}
	}
	rec.FirstName = firstNonEmpty(fields.string("firstname"), customer.string("firstname"), billing.FirstName)
	rec.LastName = firstNonEmpty(fields.string("lastname"), customer.string("lastname"), billing.LastName)
	rec.Email = firstNonEmpty(fields.string("email", "customeremail"), customer.string("email"), billing.Email)
	rec.Phone = firstNonEmpty(fields.string("phone", "customerphone"), customer.string("phone"), billing.Phone)

	amount, err := fields.amount()
	if err != nil {
		rec.Err = err
		return rec
	}
	rec.AmountCents = amount

	rec.CreatedAt = fields.time("createdat", "datecreated", "created", "transactiondate", "submittedat")
	rec.UpdatedAt = fields.time("updatedat", "dateupdated", "modifiedat")
	rec.SettledAt = fields.time("settledat", "settlementdate", "datesettled")
	rec.ProcessorUpdatedAt = fields.time("processorupdatedat", "lastmodified", "statusupdatedat")

	return rec
}

// fieldMap holds decoded JSON fields under normalized keys so camelCase and
// snake_case spellings resolve to the same entry
type fieldMap map[string]any

func normalizeKey(k string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(k))
}

func decodeValue(raw json.RawMessage, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

func decodeFields(raw json.RawMessage, into fieldMap) error {
	var obj map[string]any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil {
		return err
	}
	for k, v := range obj {
		into[normalizeKey(k)] = v
	}
	return nil
}

func lookupRaw(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	for k, v := range obj {
		if normalizeKey(k) == key {
			return v, true
		}
	}
	return nil, false
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

func (f fieldMap) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := f[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (f fieldMap) string(keys ...string) string {
	v, ok := f.lookup(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func (f fieldMap) int(keys ...string) (int, bool) {
	v, ok := f.lookup(keys...)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	default:
		return 0, false
	}
}

func (f fieldMap) bool(keys ...string) (bool, bool) {
	v, ok := f.lookup(keys...)
	if !ok {
		return false, false
	}
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return b, err == nil
	default:
		return false, false
	}
}

func (f fieldMap) object(keys ...string) fieldMap {
	v, ok := f.lookup(keys...)
	if !ok {
		return fieldMap{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return fieldMap{}
	}
	out := fieldMap{}
	for k, val := range obj {
		out[normalizeKey(k)] = val
	}
	return out
}

func (f fieldMap) address(keys ...string) *Address {
	obj := f.object(keys...)
	if len(obj) == 0 {
		return nil
	}
	addr := &Address{
		FirstName:  obj.string("firstname"),
		LastName:   obj.string("lastname"),
		Email:      obj.string("email"),
		Phone:      obj.string("phone"),
		Line1:      obj.string("line1", "address1", "addressline1", "street", "street1"),
		Line2:      obj.string("line2", "address2", "addressline2", "street2"),
		City:       obj.string("city", "locality"),
		State:      obj.string("state", "region", "province"),
		PostalCode: obj.string("postalcode", "zip", "zipcode", "postcode"),
		Country:    obj.string("country", "countrycode"),
	}
	if addr.IsZero() {
		return nil
	}
	return addr
}

func (f fieldMap) time(keys ...string) *time.Time {
	s := f.string(keys...)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// amount reads the transaction amount in cents. Explicit cent fields and
// integer amounts are minor units; decimal amounts are major units.
func (f fieldMap) amount() (int64, error) {
	if v, ok := f.lookup("amountcents", "amountincents"); ok {
		return minorUnits(v)
	}
	v, ok := f.lookup("amount", "totalamount", "total")
	if !ok {
		return 0, nil
	}
	return minorUnits(v)
}

func minorUnits(v any) (int64, error) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), "$"))
	default:
		return 0, fmt.Errorf("unsupported amount value %v", v)
	}
	if s == "" {
		return 0, nil
	}
	if strings.ContainsAny(s, ".eE") {
		return majorToCents(s)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}

// majorToCents converts a decimal string to cents without going through
// floating point, rounding half away from zero at the third decimal
func majorToCents(s string) (int64, error) {
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
		s = strconv.FormatFloat(f, 'f', 3, 64)
	}

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimLeft(s, "+-")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	frac += "000"

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	c, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := w*100 + c
	if frac[2] >= '5' {
		cents++
	}
	if negative {
		cents = -cents
	}
	return cents, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
