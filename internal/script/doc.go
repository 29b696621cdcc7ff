package script

// Package script reads YAML layout scripts: an optional starting list followed
// by add, remove and update steps that are replayed through a state container.
//
//	start: default
//	component: ProfileCard
//	steps:
//	  - add: horizontal
//	  - update:
//	      target: 4
//	      height: 48px
//	      radius: full
//	  - remove: 1
