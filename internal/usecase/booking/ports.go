package booking

// Notifier é o colaborador de notificação injetado nos usecases.
// A entrega é fire-and-forget: falha de notificação nunca falha a
// operação que a disparou.
type Notifier interface {
	NotifyAdmins(message string, payload any)
	NotifyUser(userID uint, message string, payload any)
}
