package ui

// Package ui contains the Fyne-based skeleton playground. It wires element
// controls to the layout store, paints the live preview, shows the generated
// code with copy and save actions, and hosts the settings dialog. All UI
// strings are localized via Localization.
