package client

// Notifier receives one-shot outcome notifications (toasts).
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Confirmer asks the user a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(message string) bool
}

// Navigator changes the current location. Push("?"+values.Encode()) updates
// the listing address; Push("..") leaves a detail form back to the listing.
type Navigator interface {
	Push(to string)
}

// MsgLeave guards navigation away from a form with unsaved edits.
const MsgLeave = "Thay đổi chưa được lưu, bạn có chắc muốn rời đi?"

func msgNotFound(label string) string {
	return "Không tìm thấy " + label + " này"
}

func msgGetDetailFailed(label string) string {
	return "Không thể tải chi tiết " + label
}

func msgListFailed(label string) string {
	return "Không thể tải danh sách " + label
}

func msgCreateSuccess(label string) string {
	return "Thêm " + label + " thành công"
}

func msgCreateFailed(label string) string {
	return "Thêm " + label + " thất bại"
}

func msgEditSuccess(label string) string {
	return "Cập nhật " + label + " thành công"
}

func msgEditFailed(label string) string {
	return "Cập nhật " + label + " thất bại"
}

func msgDeleteSuccess(label string) string {
	return "Xóa " + label + " thành công"
}

func msgDeleteFailed(label string) string {
	return "Xóa " + label + " thất bại"
}

func msgExisted(label, name string) string {
	return label + " \"" + name + "\" đã tồn tại"
}

func msgAlreadyUsedElsewhere(label, name string) string {
	return label + " \"" + name + "\" đang được sử dụng ở nơi khác, không thể xóa"
}

func msgConfirmDelete(label, name string) string {
	return "Bạn có chắc muốn xóa " + label + " \"" + name + "\" không?"
}
