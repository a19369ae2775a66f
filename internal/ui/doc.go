// Package ui is the dashboard state machine and frame composer.
//
// Core pieces:
//   - App: owns the run mode, selected tab, input mode and message buffer, and
//     dispatches key presses through the Normal or Editing table
//   - Tab: capability set each tab implements, plus the optional Horizontal
//     and Runner interfaces
//   - Render: composes the tab bar, content or message prompt, event log and
//     status bar into one frame
//   - KeyMap: bubbles key bindings for both tables; the Normal ones double as
//     the status bar legend
package ui
