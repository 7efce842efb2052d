package service

import (
	"errors"
	"fmt"
)

// Classification sentinels. Handlers test against these with errors.Is to
// pick an HTTP status; the concrete error text is what the operator reads.
var (
	ErrNoEncontrado   = errors.New("registro no encontrado")
	ErrDatosInvalidos = errors.New("datos invalidos")
	ErrEmailDuplicado = errors.New("El correo electrónico ya está registrado.")
	ErrCredenciales   = errors.New("Email o contraseña incorrectos.")
)

type noEncontradoError struct{ msg string }

func (e noEncontradoError) Error() string        { return e.msg }
func (e noEncontradoError) Is(target error) bool { return target == ErrNoEncontrado }

var (
	ErrClienteNoEncontrado   error = noEncontradoError{"Cliente no encontrado."}
	ErrProveedorNoEncontrado error = noEncontradoError{"Proveedor no encontrado."}
	ErrProductoNoEncontrado  error = noEncontradoError{"Producto no encontrado."}
	ErrCajaNoEncontrada      error = noEncontradoError{"Caja no encontrada."}
	ErrFacturaNoEncontrada   error = noEncontradoError{"Factura no encontrada."}
)

type datosInvalidosError struct{ msg string }

func (e datosInvalidosError) Error() string        { return e.msg }
func (e datosInvalidosError) Is(target error) bool { return target == ErrDatosInvalidos }

var (
	ErrVentaSinProductos   error = datosInvalidosError{"Debe agregar al menos un producto a la venta."}
	ErrVentaDesalineada    error = datosInvalidosError{"Cada producto debe tener su cantidad."}
	ErrCantidadInvalida    error = datosInvalidosError{"La cantidad debe ser un entero mayor a cero."}
	ErrRazonSocialFaltante error = datosInvalidosError{"La razón social es obligatoria."}
)

// StockInsuficienteError aborts a sale when a product cannot cover the
// requested quantity.
type StockInsuficienteError struct{ IDProducto uint }

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto ID %d.", e.IDProducto)
}

// SinPrecioError aborts a sale of a product whose price was never set.
type SinPrecioError struct{ IDProducto uint }

func (e *SinPrecioError) Error() string {
	return fmt.Sprintf("El producto %d no tiene precio.", e.IDProducto)
}

// EsErrorDeVenta reports whether err is a business rule that rejected a sale,
// as opposed to an unexpected storage failure.
func EsErrorDeVenta(err error) bool {
	var stock *StockInsuficienteError
	var precio *SinPrecioError
	return errors.Is(err, ErrProductoNoEncontrado) ||
		errors.As(err, &stock) ||
		errors.As(err, &precio)
}
