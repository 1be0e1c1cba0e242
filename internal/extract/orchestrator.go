package extract

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/domain"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/port"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/schema"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/trade"
	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/validator"
)

// Policy selects how a document type's field groups are issued against the
// model API.
type Policy string

const (
	PolicyAuto       Policy = "auto"
	PolicySequential Policy = "sequential"
	PolicyConcurrent Policy = "concurrent"
)

// Orchestrator runs the field-group extractors for a document and scores the
// assembled record. Its contract is total: every invocation returns a
// validator.Result, never an error or a panic.
type Orchestrator struct {
	model    port.ModelClient
	override Policy
}

// NewOrchestrator creates an orchestrator. cfg.Policy overrides the
// per-document-type concurrency defaults when set to "sequential" or
// "concurrent".
func NewOrchestrator(model port.ModelClient, cfg *config.ExtractConfig) *Orchestrator {
	override := PolicyAuto
	if cfg != nil {
		switch Policy(strings.ToLower(cfg.Policy)) {
		case PolicySequential:
			override = PolicySequential
		case PolicyConcurrent:
			override = PolicyConcurrent
		}
	}
	return &Orchestrator{model: model, override: override}
}

// concurrentFor returns whether a document type's groups run concurrently.
// Commercial invoices carry seven groups and default to sequential to keep
// total call volume inside provider rate limits; the three-group types
// default to concurrent.
func (o *Orchestrator) concurrentFor(docType domain.DocumentType) bool {
	switch o.override {
	case PolicySequential:
		return false
	case PolicyConcurrent:
		return true
	}
	return docType != domain.DocTypeCommercialInvoice
}

// applyFunc decodes one group's raw model output into the record under
// construction.
type applyFunc func(group, raw string) error

// ExtractAndValidate runs every field group for the document type, merges
// the outputs into a canonical record, derives computed fields, and returns
// the validation result. Group failures become warnings, never errors, and a
// panic inside a group call is contained as that group's failure; a panic in
// the merge or derive phase is recovered into an invalid result holding the
// partial record.
func (o *Orchestrator) ExtractAndValidate(ctx context.Context, docType domain.DocumentType, rawText string) (result *validator.Result) {
	var record interface{}
	var apply applyFunc
	var derive func()

	switch docType {
	case domain.DocTypeCommercialInvoice:
		rec := &trade.CommercialInvoice{}
		record = rec
		apply = func(g, raw string) error { return applyCommercialInvoiceGroup(rec, g, raw) }
		derive = func() { deriveCommercialInvoice(rec) }
	case domain.DocTypeScometDeclaration:
		rec := &trade.ScometDeclaration{}
		record = rec
		apply = func(g, raw string) error { return applyScometDeclarationGroup(rec, g, raw) }
	case domain.DocTypePackingList:
		rec := &trade.PackingList{}
		record = rec
		apply = func(g, raw string) error { return applyPackingListGroup(rec, g, raw) }
		derive = func() { derivePackingList(rec) }
	case domain.DocTypeFumigationCertificate:
		rec := &trade.FumigationCertificate{}
		record = rec
		apply = func(g, raw string) error { return applyFumigationCertificateGroup(rec, g, raw) }
	case domain.DocTypeExportDeclaration:
		rec := &trade.ExportDeclaration{}
		record = rec
		apply = func(g, raw string) error { return applyExportDeclarationGroup(rec, g, raw) }
		derive = func() { deriveExportDeclaration(rec) }
	default:
		return validator.Validate(docType, nil)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("extract.Orchestrator: recovered panic for %s: %v", docType, r)
			result = &validator.Result{
				IsValid:  false,
				Errors:   []string{fmt.Sprintf("extraction failed unexpectedly: %v", r)},
				Warnings: []string{},
				Data:     record,
			}
		}
	}()

	groups := schema.GroupsFor(docType)
	groupWarnings := o.runGroups(ctx, groups, rawText, apply, o.concurrentFor(docType))

	if derive != nil {
		derive()
	}

	result = validator.Validate(docType, record)
	result.Warnings = append(result.Warnings, groupWarnings...)
	return result
}

type groupOutcome struct {
	name string
	text string
	err  error
}

// runGroups issues every group call and merges the successes. Outcomes are
// captured per group, so one group's exhaustion never discards the others.
// Each call is shielded against panics on its own goroutine; the recover on
// the calling goroutine cannot see a panic raised inside a spawned one.
// Merging happens on the calling goroutine; groups write disjoint fields, so
// completion order does not affect the final record.
func (o *Orchestrator) runGroups(ctx context.Context, groups []schema.GroupSchema, rawText string, apply applyFunc, concurrent bool) []string {
	outcomes := make([]groupOutcome, len(groups))

	if concurrent {
		var wg sync.WaitGroup
		for i, g := range groups {
			wg.Add(1)
			go func(i int, g schema.GroupSchema) {
				defer wg.Done()
				outcomes[i] = o.safeCallGroup(ctx, g, rawText)
			}(i, g)
		}
		wg.Wait()
	} else {
		for i, g := range groups {
			outcomes[i] = o.safeCallGroup(ctx, g, rawText)
		}
	}

	warnings := []string{}
	for _, out := range outcomes {
		if out.err != nil {
			log.Printf("extract.Orchestrator: group %s failed: %v", out.name, out.err)
			warnings = append(warnings, fmt.Sprintf("Could not extract %s fields", out.name))
			continue
		}
		if err := apply(out.name, out.text); err != nil {
			log.Printf("extract.Orchestrator: group %s decode failed: %v", out.name, err)
			warnings = append(warnings, fmt.Sprintf("Could not decode %s fields", out.name))
		}
	}
	return warnings
}

// safeCallGroup converts a panic inside one group call into that group's
// failure outcome, so a misbehaving model client degrades a single group
// instead of killing the process.
func (o *Orchestrator) safeCallGroup(ctx context.Context, g schema.GroupSchema, rawText string) (out groupOutcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("extract.Orchestrator: recovered panic in group %s: %v", g.Name, r)
			out = groupOutcome{name: g.Name, err: fmt.Errorf("group call panicked: %v", r)}
		}
	}()
	text, err := o.callGroup(ctx, g, rawText)
	return groupOutcome{name: g.Name, text: text, err: err}
}

func (o *Orchestrator) callGroup(ctx context.Context, g schema.GroupSchema, rawText string) (string, error) {
	return o.model.Generate(ctx, port.GenerateRequest{
		System:       schema.SystemPrompt,
		Instructions: g.Prompt(),
		Document:     g.DocPrefix(rawText),
	})
}
