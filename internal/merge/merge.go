// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge copies a group tree into a target vault without ever
// changing what the target already holds.
//
// Groups are matched by exact name within the same parent and created when
// missing. Entries are matched by (title, username) within their group;
// matches are skipped and left untouched, everything else is created with
// its fields copied verbatim. Merging the same source twice creates nothing
// the second time.
package merge

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-share/internal/logger"
	"github.com/MKhiriev/go-pass-share/models"
)

//go:generate mockgen -source=merge.go -destination=../mock/merge_target_mock.go -package=mock

// Target is the tree the engine writes into.
type Target interface {
	Root() *models.Group
	FindGroup(parent *models.Group, name string) *models.Group
	FindEntry(parent *models.Group, title, username string) *models.Entry
	CreateGroup(parent *models.Group, fields models.GroupFields) (*models.Group, error)
	CreateEntry(parent *models.Group, fields models.EntryFields) (*models.Entry, error)
}

// ErrNoTargetRoot is returned when the target has no root group.
var ErrNoTargetRoot = errors.New("target has no root group")

// Engine merges group trees.
type Engine struct {
	logger *logger.Logger
}

func NewEngine(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{logger: log}
}

// pair links a source group to the target group it merges into.
type pair struct {
	source *models.Group
	target *models.Group
}

// Merge merges source into the root of target and returns the number of
// entries created.
func (e *Engine) Merge(ctx context.Context, source *models.Group, target Target) (int, error) {
	root := target.Root()
	if root == nil {
		return 0, ErrNoTargetRoot
	}
	return e.MergeInto(ctx, source, target, root)
}

// MergeInto merges the content of source into the group into of target.
// The name of source itself is not used; its entries land in into and its
// subgroups become subgroups of into.
//
// The traversal is an explicit stack. Entries of a group are merged before
// any of its subgroups, and siblings are visited in source order.
func (e *Engine) MergeInto(ctx context.Context, source *models.Group, target Target, into *models.Group) (int, error) {
	if source == nil {
		return 0, nil
	}
	if into == nil {
		return 0, ErrNoTargetRoot
	}

	created, skipped, groups := 0, 0, 0
	stack := []pair{{source: source, target: into}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return created, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, entry := range current.source.Entries {
			if entry == nil {
				continue
			}
			if target.FindEntry(current.target, entry.Title, entry.Username) != nil {
				skipped++
				e.logger.Debug().
					Str("group", current.target.Name).
					Str("title", entry.Title).
					Str("username", entry.Username).
					Msg("Skipped existing entry")
				continue
			}

			if _, err := target.CreateEntry(current.target, entry.EntryFields); err != nil {
				return created, fmt.Errorf("create entry %q in group %q: %w", entry.Title, current.target.Name, err)
			}
			created++
			e.logger.Debug().
				Str("group", current.target.Name).
				Str("title", entry.Title).
				Str("username", entry.Username).
				Msg("Imported entry")
		}

		children := make([]pair, 0, len(current.source.Groups))
		for _, child := range current.source.Groups {
			if child == nil {
				continue
			}

			dst := target.FindGroup(current.target, child.Name)
			if dst == nil {
				var err error
				dst, err = target.CreateGroup(current.target, child.GroupFields)
				if err != nil {
					return created, fmt.Errorf("create group %q in group %q: %w", child.Name, current.target.Name, err)
				}
				groups++
				e.logger.Debug().
					Str("parent", current.target.Name).
					Str("group", child.Name).
					Msg("Created group")
			}
			children = append(children, pair{source: child, target: dst})
		}

		// reversed so the first sibling is popped first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	e.logger.Info().
		Int("entries_created", created).
		Int("entries_skipped", skipped).
		Int("groups_created", groups).
		Msg("merge finished")

	return created, nil
}
