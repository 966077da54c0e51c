package reconcile

import (
	"fmt"
	"sort"
)

// Reconcile computes the new row set of every language from the local
// catalog and the current remote rows. It is a pure function: inputs are
// never mutated and no I/O is performed.
//
// Surviving rows keep their relative order and their text; new messages
// are appended in catalog order. Secondary rows are seeded with an empty
// translation and the base message as reference.
func Reconcile(local []Message, base []BaseRow, secondary map[string][]TranslationRow) (*Plan, error) {
	localIDs, err := indexMessages(local)
	if err != nil {
		return nil, err
	}

	remoteIDs := make(map[string]struct{}, len(base))
	for _, row := range base {
		remoteIDs[row.ID] = struct{}{}
	}

	// Step 1: new messages, catalog order
	newMessages := make([]Message, 0)
	for _, msg := range local {
		if _, ok := remoteIDs[msg.ID]; !ok {
			newMessages = append(newMessages, msg)
		}
	}

	// Step 2: stale ids, remote order
	staleIDs := make([]string, 0)
	stale := make(map[string]struct{})
	for _, row := range base {
		if _, ok := localIDs[row.ID]; ok {
			continue
		}
		if _, seen := stale[row.ID]; !seen {
			staleIDs = append(staleIDs, row.ID)
		}
		stale[row.ID] = struct{}{}
	}

	// Step 3: base rows
	newBase := make([]BaseRow, 0, len(base)+len(newMessages))
	kept := make(map[string]struct{}, len(base))
	for _, row := range base {
		if _, ok := stale[row.ID]; ok {
			continue
		}
		newBase = append(newBase, row)
		kept[row.ID] = struct{}{}
	}
	survivors := newBase
	for _, msg := range newMessages {
		newBase = append(newBase, BaseRow{ID: msg.ID, Message: msg.Message})
	}

	plan := &Plan{
		NewMessages: newMessages,
		StaleIDs:    staleIDs,
		Base:        newBase,
		Secondary:   make(map[string][]TranslationRow, len(secondary)),
		Orphans:     make(map[string][]string),
		Missing:     make(map[string][]string),
	}

	// Step 4: secondary rows
	for lang, rows := range secondary {
		out, orphans, missing := reconcileSecondary(rows, kept, stale, survivors, newMessages)
		plan.Secondary[lang] = out
		if len(orphans) > 0 {
			plan.Orphans[lang] = orphans
			plan.Summary.Orphans += len(orphans)
		}
		if len(missing) > 0 {
			plan.Missing[lang] = missing
			plan.Summary.Missing += len(missing)
		}
	}

	plan.Summary.TotalMessages = len(local)
	plan.Summary.Added = len(newMessages)
	plan.Summary.Removed = len(staleIDs)
	plan.Summary.Kept = len(survivors)

	return plan, nil
}

// reconcileSecondary filters one language's rows down to the surviving
// base ids and appends a seeded row per new message.
func reconcileSecondary(rows []TranslationRow, kept, stale map[string]struct{}, survivors []BaseRow, newMessages []Message) (out []TranslationRow, orphans, missing []string) {
	out = make([]TranslationRow, 0, len(rows)+len(newMessages))
	present := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		if _, ok := kept[row.ID]; !ok {
			if _, ok := stale[row.ID]; !ok {
				orphans = append(orphans, row.ID)
			}
			continue
		}
		out = append(out, row)
		present[row.ID] = struct{}{}
	}
	for _, msg := range newMessages {
		out = append(out, TranslationRow{ID: msg.ID, Ref: msg.Message, Message: ""})
	}

	for _, row := range survivors {
		if _, ok := present[row.ID]; !ok {
			missing = append(missing, row.ID)
		}
	}

	return out, orphans, missing
}

// indexMessages builds the id set of the catalog, failing on duplicates.
func indexMessages(local []Message) (map[string]struct{}, error) {
	ids := make(map[string]struct{}, len(local))
	for _, msg := range local {
		if _, ok := ids[msg.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, msg.ID)
		}
		ids[msg.ID] = struct{}{}
	}
	return ids, nil
}

// Languages returns the plan's secondary language codes in sorted order.
func (p *Plan) Languages() []string {
	langs := make([]string, 0, len(p.Secondary))
	for lang := range p.Secondary {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}
