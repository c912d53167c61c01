package role

// Role определяет уровень доступа пользователя
type Role int

const (
	Client  Role = iota // обычный клиент (заказчик перевозки)
	Manager             // менеджер (зарезервировано)
	Admin               // администратор панели управления
)

func (r Role) String() string {
	switch r {
	case Client:
		return "client"
	case Manager:
		return "manager"
	case Admin:
		return "admin"
	}
	return "unknown"
}
