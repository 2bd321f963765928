// Package engine composes widgets into a layout tree and drives the frame loop.
//
// A dashboard is a tree of Nodes. Each Node splits its area with tui.Split and binds
// widgets and child Nodes to the resulting region indices. New validates the tree,
// assigns every widget a stable WidgetID and runs the registration pass once. Run then
// loops until Shutdown:
//
//  1. poll at most one event, waiting up to the frame interval
//  2. split the tree top-down, collecting (widget, rect) bindings
//  3. dispatch the event to every widget concurrently and join
//  4. deliver messages posted during dispatch
//  5. render every widget into its rect and flush the frame
//
// Each widget is guarded by its own mutex. Handlers that need to change another widget
// post a Message instead of locking it; messages are applied after the join, before
// rendering, so the frame that handled an event always renders its effects.
//
// Lookup and Expose give direct access to a widget's concrete state. Outside a frame
// Expose applies immediately under the widget lock. Inside a frame, from any handler,
// Receive or Render, the callback is queued and applied under the target's lock at the
// next delivery round, so a widget may expose itself or a peer exposing it back.
package engine
