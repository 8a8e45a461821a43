// Package ecs feeds a11ykit audit results into an entity component system.
//
// [NewDonburiStore] turns each issue reported by [a11ykit.Engine.Audit] or
// [a11ykit.Engine.AuditAll] into a typed event on a [Donburi] world. Systems
// that draw debug overlays or write audit logs subscribe to
// [IssueEventType] and drain the queue once per frame:
//
//	engine.SetIssueStore(ecs.NewDonburiStore(world))
//	ecs.IssueEventType.Subscribe(world, onIssue)
//	// each frame
//	ecs.IssueEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
