/*
Package bezier implements the geometry for an interactive Bezier curve editor:
points (pairs), linear interpolation and affine transformations.

Curve evaluation lives in sub-package casteljau, the mouse-driven editing of
control points in sub-package interact.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier
