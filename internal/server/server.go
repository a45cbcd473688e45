package server

// Server объединяет HTTP-серверы отдельных сущностей: номера, хвосты
// телефонных номеров, регионы и клавиатуру ввода.
type Server struct {
	PlateServer
	TailServer
	RegionServer
	KeypadServer
}

func NewServer(
	plateServer PlateServer,
	tailServer TailServer,
	regionServer RegionServer,
	keypadServer KeypadServer,
) Server {
	return Server{
		PlateServer:  plateServer,
		TailServer:   tailServer,
		RegionServer: regionServer,
		KeypadServer: keypadServer,
	}
}
