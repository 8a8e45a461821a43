package ecs

import (
	"github.com/phanxgames/a11ykit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// IssueEventType carries one event per issue an audit reports. Events sit
// in the world's queue until a system calls ProcessEvents, so an audit run
// mid-frame is delivered on the next pass of the event system.
var IssueEventType = events.NewEventType[a11ykit.Issue]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore returns an IssueStore that queues every issue on world.
// Install it with Engine.SetIssueStore.
func NewDonburiStore(world donburi.World) a11ykit.IssueStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitIssue(issue a11ykit.Issue) {
	IssueEventType.Publish(s.world, issue)
}
