package client

import "context"

// AddID is the detail-route segment that opens the form in create mode.
const AddID = "add"

type FormState string

const (
	FormClean      FormState = "clean"
	FormDirty      FormState = "dirty"
	FormSubmitting FormState = "submitting"
)

// FormController drives one create/edit form. ID is the entity being edited,
// or zero when IsCreate.
type FormController[T Identifiable] struct {
	Resource Resource[T]
	Notify   Notifier
	Confirm  Confirmer
	Nav      Navigator

	ID       int64
	IsCreate bool

	// Prepare builds the wire input from the form values just before
	// submission. A non-nil error aborts locally with a notification, for
	// example when a required attachment has not finished uploading.
	Prepare func() (any, error)

	state FormState
}

// NewForm builds a controller for the detail route segment: AddID opens a
// create form, anything else edits the entity with that id.
func NewForm[T Identifiable](res Resource[T], id int64, isCreate bool) *FormController[T] {
	return &FormController[T]{Resource: res, ID: id, IsCreate: isCreate, state: FormClean}
}

func (fc *FormController[T]) State() FormState {
	return fc.state
}

// MarkDirty records a user edit. Submitting forms are not re-markable; the
// fields are locked for the duration of the request.
func (fc *FormController[T]) MarkDirty() {
	if fc.state == FormClean {
		fc.state = FormDirty
	}
}

// Load fetches the entity under edit. Create forms start empty and never
// fetch. A missing entity pushes the user back to the listing.
func (fc *FormController[T]) Load(ctx context.Context) (T, bool) {
	var zero T
	if fc.IsCreate {
		return zero, true
	}
	item, status, err := fc.Resource.Get(ctx, fc.ID)
	if err == nil && status == StatusOK {
		return item, true
	}
	if fc.Notify != nil {
		if err == nil && status == StatusNotFound {
			fc.Notify.Error(msgNotFound(fc.Resource.Label))
		} else {
			fc.Notify.Error(msgGetDetailFailed(fc.Resource.Label))
		}
	}
	if fc.Nav != nil {
		fc.Nav.Push("..")
	}
	return zero, false
}

// Save submits the form. Clean forms and forms already submitting are no-ops.
// A successful create leaves for the listing; a successful edit stays on the
// form with the dirty flag cleared. Expected failures surface a notification
// and keep the user's edits dirty for another attempt.
func (fc *FormController[T]) Save(ctx context.Context, name string) {
	if fc.state != FormDirty {
		return
	}

	input := any(nil)
	if fc.Prepare != nil {
		prepared, err := fc.Prepare()
		if err != nil {
			if fc.Notify != nil {
				fc.Notify.Error(err.Error())
			}
			return
		}
		input = prepared
	}

	fc.state = FormSubmitting

	var status Status
	var err error
	if fc.IsCreate {
		status, err = fc.Resource.Create(ctx, input)
	} else {
		status, err = fc.Resource.Update(ctx, fc.ID, input)
	}

	if err == nil && status == StatusOK {
		fc.state = FormClean
		if fc.Notify != nil {
			if fc.IsCreate {
				fc.Notify.Success(msgCreateSuccess(fc.Resource.Label))
			} else {
				fc.Notify.Success(msgEditSuccess(fc.Resource.Label))
			}
		}
		if fc.IsCreate && fc.Nav != nil {
			fc.Nav.Push("..")
		}
		return
	}

	fc.state = FormDirty
	if fc.Notify == nil {
		return
	}
	switch {
	case err == nil && status == StatusDuplicateEntity:
		fc.Notify.Error(msgExisted(fc.Resource.Label, name))
	case fc.IsCreate:
		fc.Notify.Error(msgCreateFailed(fc.Resource.Label))
	default:
		fc.Notify.Error(msgEditFailed(fc.Resource.Label))
	}
}

// Leave gates navigation away from the form. Unsaved edits require explicit
// confirmation; clean forms leave silently.
func (fc *FormController[T]) Leave() bool {
	if fc.state != FormDirty {
		return true
	}
	if fc.Confirm == nil {
		return false
	}
	return fc.Confirm.Confirm(MsgLeave)
}
