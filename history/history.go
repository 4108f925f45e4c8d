// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package history provides an undo / redo stack of state snapshots,
// which notifies subscribers after every undo or redo so that they can
// rebuild any state derived from the restored snapshot.
package history

// Record is one undo record, associated with one action that changed
// the state.
type Record[T any] struct {

	// Action is a description of the action, for the user to see.
	Action string

	// State is the state before the action.
	State T

	// after is the state after the action, set when it is undone.
	after T
}

// Event is sent to subscribers after an undo or redo.
type Event struct {

	// Action is the action that was undone or redone.
	Action string

	// Redo is true for a redo, and false for an undo.
	Redo bool
}

// Stack is an undo / redo stack. The zero value is ready to use,
// but a Stack without a Restore function only notifies subscribers.
// It is not safe for concurrent use.
type Stack[T any] struct {

	// Restore is called with the state to restore on undo and redo,
	// before subscribers are notified.
	Restore func(state T)

	// Records are the saved records. The records before the current
	// index can be undone, and the ones after it can be redone.
	Records []*Record[T]

	// index is the number of records that can be undone.
	index int

	subs   []subscriber
	nextID int
}

type subscriber struct {
	id  int
	fun func(ev Event)
}

// New returns a new stack using the given restore function.
func New[T any](restore func(state T)) *Stack[T] {
	return &Stack[T]{Restore: restore}
}

// Save saves a new record for the given action, with the state from
// before the action. Any records that could be redone are discarded.
func (st *Stack[T]) Save(action string, state T) {
	clear(st.Records[st.index:])
	st.Records = append(st.Records[:st.index], &Record[T]{Action: action, State: state})
	st.index++
}

// CanUndo returns whether there is a record that can be undone.
func (st *Stack[T]) CanUndo() bool {
	return st.index > 0
}

// CanRedo returns whether there is a record that can be redone.
func (st *Stack[T]) CanRedo() bool {
	return st.index < len(st.Records)
}

// UndoAction returns the action that [Stack.Undo] would undo, if any.
func (st *Stack[T]) UndoAction() string {
	if !st.CanUndo() {
		return ""
	}
	return st.Records[st.index-1].Action
}

// RedoAction returns the action that [Stack.Redo] would redo, if any.
func (st *Stack[T]) RedoAction() string {
	if !st.CanRedo() {
		return ""
	}
	return st.Records[st.index].Action
}

// Undo restores the state from before the last action, keeping the
// given current state so that the action can be redone. It returns
// the action and false if there is nothing to undo.
func (st *Stack[T]) Undo(current T) (string, bool) {
	if !st.CanUndo() {
		return "", false
	}
	st.index--
	rec := st.Records[st.index]
	rec.after = current
	st.restore(rec.State)
	st.notify(Event{Action: rec.Action})
	return rec.Action, true
}

// Redo restores the state from after the last undone action.
// It returns the action and false if there is nothing to redo.
func (st *Stack[T]) Redo() (string, bool) {
	if !st.CanRedo() {
		return "", false
	}
	rec := st.Records[st.index]
	st.index++
	st.restore(rec.after)
	st.notify(Event{Action: rec.Action, Redo: true})
	return rec.Action, true
}

// Reset removes all records. Subscribers are kept.
func (st *Stack[T]) Reset() {
	st.Records = nil
	st.index = 0
}

// Subscribe adds a function that is called after every undo and redo,
// in the order of subscription. It returns a function that removes
// the subscription.
func (st *Stack[T]) Subscribe(fun func(ev Event)) func() {
	id := st.nextID
	st.nextID++
	st.subs = append(st.subs, subscriber{id: id, fun: fun})
	return func() {
		for i, s := range st.subs {
			if s.id == id {
				st.subs = append(st.subs[:i], st.subs[i+1:]...)
				return
			}
		}
	}
}

func (st *Stack[T]) restore(state T) {
	if st.Restore != nil {
		st.Restore(state)
	}
}

func (st *Stack[T]) notify(ev Event) {
	// subscribers may unsubscribe while being notified
	for _, s := range append([]subscriber(nil), st.subs...) {
		s.fun(ev)
	}
}
