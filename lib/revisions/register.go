package revisions

import (
	"github.com/ether/builder-revisions/lib/hooks"
	"github.com/ether/builder-revisions/lib/hooks/events"
	"github.com/ether/builder-revisions/lib/request"
)

// Register subscribes the coordinator to the host events on h. Registering
// twice on the same hook is a no-op.
func (m *Manager) Register(h *hooks.Hook, opts RegisterOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.registered[h]; ok {
		return
	}
	m.registered[h] = struct{}{}

	h.EnqueueHookWithPriority(hooks.RevisionRestoredString, 10, func(ctx any) {
		restored := ctx.(*events.RevisionRestoredContext)
		if err := m.RestoreRevision(restored.Ctx, restored.DocumentID, restored.RevisionID); err != nil {
			restored.Err = err
		}
	})
	h.EnqueueHookWithPriority(hooks.InitString, 9999, func(ctx any) {
		m.AddRevisionSupportForAllPostTypes()
	})
	h.EnqueueHookWithPriority(hooks.EditorLocalizeSettingsString, 10, func(ctx any) {
		localize := ctx.(*events.LocalizeSettingsContext)
		settings, err := m.EditorSettings(localize.Ctx, localize.Settings, localize.DocumentID)
		if err != nil {
			localize.Err = err
			return
		}
		localize.Settings = settings
	})
	h.EnqueueHookWithPriority(hooks.SaveBuilderReturnDataString, 10, func(ctx any) {
		returnData := ctx.(*events.SaveReturnDataContext)
		if err := m.SaveBuilderReturnData(returnData.Ctx, returnData.DocumentID, returnData.ReturnData); err != nil {
			returnData.Err = err
		}
	})
	h.EnqueueHookWithPriority(hooks.BeforeSaveString, 10, func(ctx any) {
		beforeSave := ctx.(*events.BeforeSaveContext)
		m.BeforeSave(beforeSave.Ctx, beforeSave.Status, beforeSave.HasChanges)
	})

	// Only active once BeforeSave latched the request.
	h.EnqueueHookWithPriority(hooks.PostHasChangedString, 10, func(ctx any) {
		changed := ctx.(*events.PostHasChangedContext)
		if request.FromContext(changed.Ctx).RevisionOnSave() {
			changed.HasChanged = true
		}
	})
	h.EnqueueHookWithPriority(hooks.RevisionCreatedString, 10, func(ctx any) {
		created := ctx.(*events.RevisionCreatedContext)
		if !request.FromContext(created.Ctx).RevisionOnSave() {
			return
		}
		if err := m.SaveRevision(created.Ctx, created.RevisionID); err != nil {
			m.logger.Errorw("failed to copy builder data to revision", "revision", created.RevisionID, "error", err)
		}
	})

	if opts.Ajax {
		h.EnqueueHook(hooks.AjaxAction(GetRevisionDataAction), func(ctx any) {
			ajax := ctx.(*events.AjaxContext)
			if ajax.Response != nil {
				return
			}
			response := m.OnRevisionDataRequest(ajax.Ctx, ajax.Request)
			ajax.Response = &response
		})
		h.EnqueueHook(hooks.AjaxAction(DeleteRevisionAction), func(ctx any) {
			ajax := ctx.(*events.AjaxContext)
			if ajax.Response != nil {
				return
			}
			response := m.OnDeleteRevisionRequest(ajax.Ctx, ajax.Request)
			ajax.Response = &response
		})
	}

	m.logger.Debugw("registered revision hooks", "ajax", opts.Ajax)
}
