package core

type PageAction int

const (
	ActionRenderPage PageAction = iota
	ActionServeBuiltFile
	ActionNeedsBuild
)

type PageRequest struct {
	IsDev       bool
	HasManifest bool
	EntryName   string
}

type PageDecision struct {
	Action   PageAction
	HTMLPath string
	Err      error
}

// DecidePageAction picks how a page request is answered. Dev renders live;
// prod only ever serves what the build wrote.
func DecidePageAction(req PageRequest, entry *ManifestEntry) PageDecision {
	if req.IsDev {
		return PageDecision{Action: ActionRenderPage}
	}

	if !req.HasManifest {
		return PageDecision{Action: ActionNeedsBuild, Err: ErrManifestMissing}
	}

	if entry == nil || entry.HTML == "" {
		return PageDecision{Action: ActionNeedsBuild, Err: ErrEntryNotBuilt}
	}

	return PageDecision{Action: ActionServeBuiltFile, HTMLPath: entry.HTML}
}
