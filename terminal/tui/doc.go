// Package tui provides the layout and drawing primitives the dashboard engine renders with.
//
// Layout is constraint driven: Split divides a Rect along one Direction into exactly one Rect
// per Constraint (Length, Min, Fill). Splitting is a pure function of its inputs, so the same
// area and constraints always produce the same tiling.
//
// Drawing goes through Region, a clipped window into a shared cell buffer. Coordinates passed
// to Region methods are relative to the region's origin and writes outside it are dropped.
//
// Usage pattern:
//
//	buf := tui.NewBuffer(w, h)
//	root := buf.Root()
//	root.Fill(theme.Bg)
//
//	rows := root.Split(tui.Vertical, tui.Length(1), tui.Fill(1), tui.Length(1))
//	rows[0].TextCenter(0, "DASHBOARD", theme.HeaderFg, theme.HeaderBg, terminal.AttrBold)
//	body := rows[1].Card("MAIN", tui.LineRounded, theme.Border)
//	body.Text(0, 0, "Hello", theme.Fg, terminal.RGB{}, terminal.AttrNone)
//
// A zero RGB background passed to Cell keeps the background already in the buffer, so
// text can be layered over filled panels.
package tui
