package client

import "context"

// DeleteFlow runs the confirm-delete-refresh sequence for one listing row.
type DeleteFlow[T Identifiable] struct {
	Resource Resource[T]
	List     *ListController[T]
	Notify   Notifier
	Confirm  Confirmer
	Nav      Navigator
}

// Delete asks for confirmation, removes the item and refreshes the listing.
// rowIndex is the item's 0-based position within the current page. When the
// deleted item was both the last of the collection and alone on its page, the
// page would come back empty, so the flow navigates to the previous page
// instead of refetching.
func (df DeleteFlow[T]) Delete(ctx context.Context, item T, rowIndex int) {
	if df.Confirm != nil && !df.Confirm.Confirm(msgConfirmDelete(df.Resource.Label, item.GetName())) {
		return
	}

	status, err := df.Resource.Remove(ctx, item.GetID())
	if err != nil || status != StatusOK {
		if df.Notify == nil {
			return
		}
		if err == nil && status == StatusAlreadyUsedElsewhere {
			df.Notify.Error(msgAlreadyUsedElsewhere(df.Resource.Label, item.GetName()))
		} else {
			df.Notify.Error(msgDeleteFailed(df.Resource.Label))
		}
		return
	}

	if df.Notify != nil {
		df.Notify.Success(msgDeleteSuccess(df.Resource.Label))
	}

	q := df.List.Query()
	total := df.List.Total()
	indexOneBased := int64(q.Page*PageSize+rowIndex) + 1

	if indexOneBased == total && indexOneBased != 1 && indexOneBased%PageSize == 1 {
		nq := q.withPage(int(indexOneBased)/PageSize - 1)
		if df.Nav != nil {
			df.Nav.Push("?" + nq.Values().Encode())
		}
		df.List.SetQuery(ctx, nq)
		return
	}

	df.List.Refetch(ctx)
}
