package system

import "github.com/lixenwraith/quad-snap/engine"

// Set holds the systems hosts interact with directly after Install
type Set struct {
	Snap      *SnapSystem
	Merge     *MergeSystem
	Placement *PlacementSystem
	Guide     *GuideSystem
}

// Install registers the full simulation on w; the guide starts disabled unless guided is set
func Install(w *engine.World, guided bool) *Set {
	set := &Set{
		Snap:      NewSnapSystem(w),
		Merge:     NewMergeSystem(w),
		Placement: NewPlacementSystem(w),
		Guide:     NewGuideSystem(w),
	}
	set.Guide.SetEnabled(guided)

	w.AddSystem(NewPhysicsSystem(w))
	w.AddSystem(set.Snap)
	w.AddSystem(set.Merge)
	w.AddSystem(set.Placement)
	w.AddSystem(NewCompletionSystem(w))
	w.AddSystem(NewDampenerSystem(w))
	w.AddSystem(set.Guide)
	w.AddSystem(NewAudioSystem(w))
	w.AddSystem(NewDiagSystem(w))
	return set
}
