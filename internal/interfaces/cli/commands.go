package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mall-client/internal/domain/entity"
	"github.com/jhoicas/mall-client/internal/infrastructure/api"
	"github.com/jhoicas/mall-client/internal/infrastructure/gateway"
)

// NewRootCommand comandos del cliente. Los errores se imprimen con el mensaje
// visible al usuario que lleva cada error del gateway.
func NewRootCommand(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mall",
		Short:         "Cliente de terminal de la tienda",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			a.flush()
		},
	}
	root.AddCommand(
		loginCmd(a),
		registerCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		productsCmd(a),
		cartCmd(a),
		openCmd(a),
	)
	return root
}

// Execute corre el comando y traduce el error al mensaje visible.
func Execute(ctx context.Context, a *App, args []string) error {
	root := NewRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)
	if err := root.ExecuteContext(ctx); err != nil {
		a.flush()
		return errors.New(gateway.Message(err))
	}
	return nil
}

func loginCmd(a *App) *cobra.Command {
	var creds entity.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Session.Login(cmd.Context(), creds)
		},
	}
	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "usuario")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "contraseña")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func registerCmd(a *App) *cobra.Command {
	var info entity.RegisterInfo
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear una cuenta",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.Session.Register(cmd.Context(), info)
		},
	}
	cmd.Flags().StringVarP(&info.Username, "username", "u", "", "usuario")
	cmd.Flags().StringVarP(&info.Password, "password", "p", "", "contraseña")
	cmd.Flags().StringVar(&info.Email, "email", "", "correo")
	cmd.Flags().StringVar(&info.Phone, "phone", "", "teléfono")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		Run: func(cmd *cobra.Command, _ []string) {
			a.Session.Logout(cmd.Context())
		},
	}
}

func whoamiCmd(a *App) *cobra.Command {
	var refresh bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if refresh && a.Session.IsLoggedIn() {
				if _, err := a.Session.RefreshProfile(cmd.Context()); err != nil {
					return err
				}
			}
			s := a.Session.Snapshot()
			if !s.IsLoggedIn() {
				a.printf("estado: %s\n", s.State)
				return nil
			}
			a.printf("estado: %s\nusuario: %s (id %d)\nrol: %s\n", s.State, s.Username(), s.User.ID, s.Role())
			if exp, ok := a.Session.ExpiresAt(); ok {
				a.printf("expira: %s\n", exp.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "volver a leer el perfil del servidor")
	return cmd
}

func productsCmd(a *App) *cobra.Command {
	var q api.PageQuery
	cmd := &cobra.Command{
		Use:   "products [keyword]",
		Short: "Listar productos",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				q.Keyword = args[0]
			}
			page, err := a.Products.List(cmd.Context(), q)
			if err != nil {
				return err
			}
			for _, p := range page.List {
				a.printf("%4d  %-24s %12s  stock %d\n", p.ID, p.Name, a.money.Format(p.Price), p.Stock)
			}
			a.printf("%d de %d\n", len(page.List), page.Total)
			return nil
		},
	}
	cmd.Flags().IntVar(&q.Page, "page", 1, "página")
	cmd.Flags().IntVar(&q.Size, "size", 10, "tamaño de página")
	cmd.Flags().Int64Var(&q.CategoryID, "category", 0, "id de categoría")
	return cmd
}

func cartCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Carrito de compras",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.Router.Push("/cart")
			if !a.Session.IsLoggedIn() {
				return errors.New("inicie sesión primero")
			}
			return a.Cart.Fetch(cmd.Context())
		},
		RunE: func(*cobra.Command, []string) error {
			a.printCart()
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Mostrar el carrito",
		RunE: func(*cobra.Command, []string) error {
			a.printCart()
			return nil
		},
	}
	add := &cobra.Command{
		Use:   "add <productId> [cantidad]",
		Short: "Agregar un producto",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty := 1
			if len(args) == 2 {
				if qty, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("cantidad inválida %q", args[1])
				}
			}
			return a.afterCart(a.Cart.AddItem(cmd.Context(), id, qty))
		},
	}
	qty := &cobra.Command{
		Use:   "qty <itemId> <cantidad>",
		Short: "Cambiar la cantidad de una línea",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("cantidad inválida %q", args[1])
			}
			return a.afterCart(a.Cart.UpdateQuantity(cmd.Context(), id, n))
		},
	}
	rm := &cobra.Command{
		Use:   "rm <itemId>",
		Short: "Quitar una línea",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.afterCart(a.Cart.RemoveItem(cmd.Context(), id))
		},
	}
	check := &cobra.Command{
		Use:   "check <itemId> <0|1>",
		Short: "Marcar o desmarcar una línea",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			on, err := parseFlag(args[1])
			if err != nil {
				return err
			}
			return a.afterCart(a.Cart.ToggleCheck(cmd.Context(), id, on))
		},
	}
	checkAll := &cobra.Command{
		Use:   "check-all <0|1>",
		Short: "Marcar o desmarcar todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := parseFlag(args[0])
			if err != nil {
				return err
			}
			return a.afterCart(a.Cart.ToggleCheckAll(cmd.Context(), on))
		},
	}
	cmd.AddCommand(list, add, qty, rm, check, checkAll)
	return cmd
}

func openCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Navegar a una ruta aplicando el guard",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			a.Router.Push(args[0])
		},
	}
}

func (a *App) afterCart(err error) error {
	if err != nil {
		return err
	}
	a.printCart()
	return nil
}

func (a *App) printCart() {
	items := a.Cart.Items()
	if len(items) == 0 {
		a.printf("carrito vacío\n")
		return
	}
	for _, it := range items {
		mark := " "
		if it.Checked {
			mark = "x"
		}
		a.printf("[%s] %4d  %-24s x%-3d %12s\n", mark, it.ID, it.ProductName, it.Quantity, a.money.Format(it.Subtotal()))
	}
	a.printf("seleccionados: %d  total: %s  todo: %t\n", a.Cart.CheckedCount(), a.money.Format(a.Cart.CheckedTotal()), a.Cart.IsAllChecked())
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", s)
	}
	return id, nil
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "on":
		return true, nil
	case "0", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("valor inválido %q (use 0 o 1)", s)
}
