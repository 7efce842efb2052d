package dto

type ClienteRequest struct {
	Nombre    string `json:"nombre"    form:"nombre"    validate:"required,min=1"`
	Email     string `json:"email"     form:"email"`
	Telefono  string `json:"telefono"  form:"telefono"`
	Direccion string `json:"direccion" form:"direccion"`
}

type ClienteResponse struct {
	IDCliente uint   `json:"id_cliente"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
